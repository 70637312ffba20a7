package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"dcf-valuation/internal/api/models"
	"dcf-valuation/internal/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// CompanyHandler handles company preset requests
type CompanyHandler struct {
	companyDir string
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler() *CompanyHandler {
	dir := os.Getenv("COMPANY_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "companies")
		} else {
			dir = "./examples/companies"
		}
	}
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}
	return &CompanyHandler{companyDir: dir}
}

// ListCompanies handles GET /api/v1/companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies := []models.CompanyInfo{}

	entries, err := os.ReadDir(h.companyDir)
	if err != nil {
		log.Printf("CompanyHandler: failed to read company directory %s: %v", h.companyDir, err)
		c.JSON(http.StatusOK, gin.H{"companies": companies})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.companyDir, entry.Name())
		info, err := loadCompanyInfo(path, entry.Name())
		if err != nil {
			log.Printf("CompanyHandler: skipping invalid company file %s: %v", path, err)
			continue
		}
		companies = append(companies, *info)
	}

	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func loadCompanyInfo(path, filename string) (*models.CompanyInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w struct {
		Company config.CompanyConfig `yaml:"company"`
	}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	if _, err := w.Company.ToProfile(); err != nil {
		return nil, fmt.Errorf("invalid company profile: %w", err)
	}

	id := strings.TrimSuffix(filename, ".yaml")
	name := w.Company.Name
	if name == "" {
		name = id
	}
	return &models.CompanyInfo{
		ID:   id,
		Name: name,
		File: filename,
		Specs: models.CompanySpecs{
			InitialFCF:        w.Company.InitialFCF,
			NetDebt:           w.Company.NetDebt,
			SharesOutstanding: w.Company.SharesOutstanding,
			ExplicitYears:     w.Company.ExplicitYears,
		},
	}, nil
}
