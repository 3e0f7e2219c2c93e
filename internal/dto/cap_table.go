package dto

// CapTableParams defines query parameters for reading the cap table.
type CapTableParams struct {
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// ExportParams defines query parameters for exporting the cap table.
type ExportParams struct {
	Format string `form:"format"`
}
