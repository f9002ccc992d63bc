package transfer

type TimezoneUpdate struct {
	Timezone string `json:"timezone"`
}
