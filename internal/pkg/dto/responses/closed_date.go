package responses

type ClubClosedCheck struct {
	Date     string          `json:"date"`
	IsClosed bool            `json:"is_closed"`
	Closure  *ClosedDateInfo `json:"closure,omitempty"`
}
