package analytics

import "time"

type Visit struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamp time.Time `gorm:"not null;index;column:timestamp" json:"timestamp"`
	IPAddress *string   `gorm:"column:ip_address" json:"ipAddress"`
	UserAgent *string   `gorm:"column:user_agent" json:"userAgent"`
	Referrer  *string   `gorm:"column:referrer" json:"referrer"`
	Path      string    `gorm:"not null;column:path" json:"path"`
	Country   *string   `gorm:"column:country" json:"country"`
}

func (Visit) TableName() string { return "visits" }

type VisitInput struct {
	IPAddress *string
	UserAgent *string
	Referrer  *string
	Path      string
	Country   *string
}

// VisitRequest is the POST /api/analytics/visit body.
type VisitRequest struct {
	IPAddress *string `json:"ipAddress"`
	UserAgent *string `json:"userAgent"`
	Referrer  *string `json:"referrer"`
	Path      *string `json:"path" binding:"required"`
	Country   *string `json:"country"`
}

func (r VisitRequest) Input() VisitInput {
	in := VisitInput{
		IPAddress: r.IPAddress,
		UserAgent: r.UserAgent,
		Referrer:  r.Referrer,
		Country:   r.Country,
	}
	if r.Path != nil {
		in.Path = *r.Path
	}
	return in
}

// Model stamps the visit with ts, normalized to UTC.
func (in VisitInput) Model(ts time.Time) *Visit {
	return &Visit{
		Timestamp: ts.UTC(),
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
		Referrer:  in.Referrer,
		Path:      in.Path,
		Country:   in.Country,
	}
}
