package upgrades

type ApplyUpgradeRequest struct {
	Seat       string `json:"seat" binding:"required,min=2,max=4"`
	AutoReseat bool   `json:"auto_reseat"`
}

type SetPreferencesRequest struct {
	Position   []string `json:"position" binding:"omitempty,dive,oneof=window aisle middle front back exitRow"`
	Type       string   `json:"type" binding:"omitempty,oneof=standard premium exit bulkhead"`
	NearFamily bool     `json:"near_family"`
}
