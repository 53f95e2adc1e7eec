package allocation

type GroupAllocationRequest struct {
	PassengerIDs []string `json:"passenger_ids" binding:"required,min=2,dive,uuid"`
	KeepTogether bool     `json:"keep_together"`
}

type FamilyAllocationRequest struct {
	Adults       int      `json:"adults" binding:"required,min=1"`
	Children     int      `json:"children" binding:"omitempty,min=0"`
	Infants      int      `json:"infants" binding:"omitempty,min=0"`
	PassengerIDs []string `json:"passenger_ids" binding:"required,min=1,dive,uuid"`
}
