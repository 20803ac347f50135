// Package tenant loads the per-tenant configuration consumed by the finalize
// flow. Values come from environment variables (godotenv-friendly), read once
// at startup and injected into the use cases.
package tenant

import (
	"log"
	"os"
	"strconv"
	"strings"

	"iblind_pos/internal/domain/entities"
)

const (
	defaultCompanyName         = "iBlind Pro"
	defaultTenantPrefix        = "IB"
	defaultWarrantyDefaultDays = 365
)

// LoadFromEnv builds the TenantConfig from environment variables.
//
// Supported env vars:
//   - COMPANY_NAME (default: iBlind Pro)
//   - TENANT_PREFIX (default: IB)
//   - WARRANTY_DEFAULT_DAYS (default: 365)
//   - ALLOW_CUSTOM_PRICING (default: true)
func LoadFromEnv() entities.TenantConfig {
	cfg := entities.TenantConfig{
		CompanyName:         getenvDefault("COMPANY_NAME", defaultCompanyName),
		TenantPrefix:        getenvDefault("TENANT_PREFIX", defaultTenantPrefix),
		WarrantyDefaultDays: defaultWarrantyDefaultDays,
		AllowCustomPricing:  true,
	}

	if v := os.Getenv("WARRANTY_DEFAULT_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			log.Printf("[tenant][config] invalid WARRANTY_DEFAULT_DAYS=%q, using %d", v, defaultWarrantyDefaultDays)
		} else {
			cfg.WarrantyDefaultDays = days
		}
	}

	if v := strings.TrimSpace(strings.ToLower(os.Getenv("ALLOW_CUSTOM_PRICING"))); v == "false" || v == "0" || v == "no" {
		cfg.AllowCustomPricing = false
	}

	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
