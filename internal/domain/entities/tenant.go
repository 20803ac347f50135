package entities

// TenantConfig carries the per-tenant settings consumed by the finalize flow.
// It is read-only input supplied by the configuration collaborator at startup.
type TenantConfig struct {
	CompanyName         string `json:"companyName"`
	TenantPrefix        string `json:"tenantPrefix"`
	WarrantyDefaultDays int    `json:"warrantyDefaultDays"`
	AllowCustomPricing  bool   `json:"allowCustomPricing"`
}
