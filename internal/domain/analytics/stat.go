package analytics

import (
	"time"

	"gorm.io/datatypes"
)

// StatID is the id of the singleton aggregate row.
const StatID uint = 1

// Unique visitors are estimated as floor(total * 2/5), kept as a fraction so
// the same arithmetic runs in SQL.
const (
	UniqueVisitorNumerator   = 2
	UniqueVisitorDenominator = 5
)

type Referrer struct {
	Source     string  `json:"source" yaml:"source"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

type ReferrerCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type Stat struct {
	ID                 uint                           `gorm:"primaryKey;autoIncrement" json:"id"`
	Date               time.Time                      `gorm:"not null;column:date" json:"date"`
	TotalVisits        int                            `gorm:"not null;column:total_visits" json:"totalVisits"`
	UniqueVisitors     int                            `gorm:"not null;column:unique_visitors" json:"uniqueVisitors"`
	AvgTimeOnPage      *string                        `gorm:"column:avg_time_on_page" json:"avgTimeOnPage"`
	ConversionRate     *string                        `gorm:"column:conversion_rate" json:"conversionRate"`
	VisitorsByLocation datatypes.JSONType[Breakdown]  `gorm:"column:visitors_by_location" json:"visitorsByLocation"`
	VisitorsByTime     datatypes.JSONType[Breakdown]  `gorm:"column:visitors_by_time" json:"visitorsByTime"`
	TopReferrers       datatypes.JSONType[[]Referrer] `gorm:"column:top_referrers" json:"topReferrers"`
}

func (Stat) TableName() string { return "stats" }

// UniqueVisitorsFor applies the fixed estimate to a visit total.
func UniqueVisitorsFor(total int) int {
	return total * UniqueVisitorNumerator / UniqueVisitorDenominator
}

type StatInput struct {
	TotalVisits        int        `yaml:"totalVisits"`
	UniqueVisitors     int        `yaml:"uniqueVisitors"`
	AvgTimeOnPage      *string    `yaml:"avgTimeOnPage"`
	ConversionRate     *string    `yaml:"conversionRate"`
	VisitorsByLocation Breakdown  `yaml:"visitorsByLocation"`
	VisitorsByTime     Breakdown  `yaml:"visitorsByTime"`
	TopReferrers       []Referrer `yaml:"topReferrers"`
}

func (in StatInput) Model(date time.Time) *Stat {
	refs := in.TopReferrers
	if refs == nil {
		refs = []Referrer{}
	}
	return &Stat{
		Date:               date.UTC(),
		TotalVisits:        in.TotalVisits,
		UniqueVisitors:     in.UniqueVisitors,
		AvgTimeOnPage:      in.AvgTimeOnPage,
		ConversionRate:     in.ConversionRate,
		VisitorsByLocation: datatypes.NewJSONType(in.VisitorsByLocation),
		VisitorsByTime:     datatypes.NewJSONType(in.VisitorsByTime),
		TopReferrers:       datatypes.NewJSONType(refs),
	}
}

// TopReferrerCounts returns the first limit stored referrers without re-sorting.
func (s *Stat) TopReferrerCounts(limit int) []ReferrerCount {
	out := []ReferrerCount{}
	if s == nil || limit <= 0 {
		return out
	}
	for i, r := range s.TopReferrers.Data() {
		if i >= limit {
			break
		}
		out = append(out, ReferrerCount{Source: r.Source, Count: r.Count})
	}
	return out
}
