// Package domain defines the core business types for item-price-scanner.
package domain

import "time"

// Property is a single named property group entry as it appears on the wire.
// Values come as a list of value tuples; only the first element of each tuple
// carries the value text, the rest is display metadata.
type Property struct {
	Name        string      `json:"name"`
	Values      [][1]string `json:"values"`
	DisplayMode int         `json:"displayMode,omitempty"`
}

// Properties is a named group of property entries.
type Properties []Property

// Socket is one socket on an item. Group identifies the link cluster the
// socket belongs to; Attr is the socket attribute (color/type).
type Socket struct {
	Group int    `json:"group"`
	Attr  string `json:"attr"`
}

// RawItem is an externally supplied item record from the trade index.
// The shape is known but loosely typed: optional property groups, free-text
// modifier lines, and either a textual price note or a pre-resolved
// chaos-equivalent price.
type RawItem struct {
	ID       string `json:"id,omitempty"`
	TypeLine string `json:"typeLine"`

	Ilvl      int  `json:"ilvl"`
	FrameType int  `json:"frameType"`
	Corrupted bool `json:"corrupted"`

	Properties           Properties `json:"properties,omitempty"`
	AdditionalProperties Properties `json:"additionalProperties,omitempty"`
	Requirements         Properties `json:"requirements,omitempty"`

	ImplicitMods []string `json:"implicitMods,omitempty"`
	ExplicitMods []string `json:"explicitMods,omitempty"`
	CraftedMods  []string `json:"craftedMods,omitempty"`

	Sockets []Socket `json:"sockets,omitempty"`

	// Price is the raw listing note, e.g. "b/o 5 chaos". PriceChaos, when
	// non-zero, is a pre-resolved chaos-equivalent value and takes
	// precedence over Price.
	Price      string  `json:"price,omitempty"`
	PriceChaos float64 `json:"price_chaos,omitempty"`

	// Listing timestamps, unix seconds.
	LastUpdated int64 `json:"last_updated,omitempty"`
	Removed     int64 `json:"removed,omitempty"`
}

// Modifier is a free-text modifier line reduced to a canonical template and
// a representative magnitude. Two mods that differ only in their rolled
// numbers share a template, so they fold into one feature column.
type Modifier struct {
	Template  string  `json:"template"`
	Magnitude float64 `json:"magnitude"`
}

// NormalizedItem is the derived, immutable view of a RawItem after
// normalization. It is created once per RawItem and discarded after feature
// extraction.
type NormalizedItem struct {
	ItemType    string  `json:"item_type"`
	ItemSubType int     `json:"item_sub_type"`
	PriceChaos  float64 `json:"price_chaos"`
	Day         int     `json:"day"`

	Ilvl      int  `json:"ilvl"`
	FrameType int  `json:"frame_type"`
	Corrupted bool `json:"corrupted"`

	Properties           map[string]float64 `json:"properties"`
	Requirements         map[string]float64 `json:"requirements"`
	AdditionalProperties map[string]float64 `json:"additional_properties"`

	ImplicitMods []Modifier `json:"implicit_mods,omitempty"`
	ExplicitMods []Modifier `json:"explicit_mods,omitempty"`
	CraftedMods  []Modifier `json:"crafted_mods,omitempty"`

	Sockets []Socket `json:"sockets,omitempty"`
}

// ColumnSchemaRecord is a persisted, versioned column schema for one item
// category. Captured once after a training pass; never mutated afterward.
type ColumnSchemaRecord struct {
	ID        string    `json:"id"               db:"id"`
	Category  string    `json:"category"         db:"category"`
	Version   int       `json:"version"          db:"version"`
	Columns   []string  `json:"columns"          db:"columns"`
	Means     []float64 `json:"means,omitempty"  db:"means"`
	CreatedAt time.Time `json:"created_at"       db:"created_at"`
}

// DealEvent records an underpriced listing flagged in deal mode.
type DealEvent struct {
	ID          string    `json:"id"           db:"id"`
	ItemID      string    `json:"item_id"      db:"item_id"`
	Category    string    `json:"category"     db:"category"`
	ListedChaos float64   `json:"listed_chaos" db:"listed_chaos"`
	Estimate    float64   `json:"estimate"     db:"estimate"`
	Profit      float64   `json:"profit"       db:"profit"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// FlatValues flattens a property group's value tuples to their value texts,
// dropping empty tuples.
func (p *Property) FlatValues() []string {
	out := make([]string, 0, len(p.Values))
	for _, tuple := range p.Values {
		if tuple[0] != "" {
			out = append(out, tuple[0])
		}
	}
	return out
}

// Dwell returns how long the listing sat between its last update and its
// removal. Zero when either timestamp is missing.
func (r *RawItem) Dwell() time.Duration {
	if r.Removed == 0 || r.LastUpdated == 0 {
		return 0
	}
	return time.Duration(r.Removed-r.LastUpdated) * time.Second
}
