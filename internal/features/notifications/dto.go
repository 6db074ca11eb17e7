package notifications

type ListNotificationsRequestDTO struct {
	Limit  int `form:"limit"  json:"limit"`
	Offset int `form:"offset" json:"offset"`
}

type ListNotificationsResponseDTO struct {
	Notifications []*Notification `json:"notifications"`
	Total         int64           `json:"total"`
	Limit         int             `json:"limit"`
	Offset        int             `json:"offset"`
}

type UnreadCountResponseDTO struct {
	Count int64 `json:"count"`
}
