// Package catalog holds the fixed set of medical-device standard records and
// their keyword search.
package catalog

import "strings"

// Record describes one ISO/IEC standard.
type Record struct {
	ID                 string
	Topic              string
	Scope              string
	ProductApplication string
	PublicationDate    string
	Description        string
}

// Catalog is an immutable, ordered set of standard records.
type Catalog struct {
	records []Record
}

// New builds a catalog from records, preserving their order. Later records
// with a duplicate ID are ignored.
func New(records ...Record) *Catalog {
	c := &Catalog{records: make([]Record, 0, len(records))}
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		c.records = append(c.records, r)
	}
	return c
}

// Search returns every record whose text fields contain keyword as a
// case-insensitive substring, keyed by record ID. An empty keyword matches
// every record (the empty string is a substring of everything; made explicit
// here rather than left to chance).
func (c *Catalog) Search(keyword string) map[string]Record {
	results := make(map[string]Record)
	needle := strings.ToLower(keyword)
	for _, r := range c.records {
		haystack := strings.ToLower(r.Topic + " " + r.Scope + " " + r.ProductApplication + " " + r.Description)
		if strings.Contains(haystack, needle) {
			results[r.ID] = r
		}
	}
	return results
}

// All returns the records in insertion order. The returned slice is a copy.
func (c *Catalog) All() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Default returns the built-in catalog of medical-device standards.
func Default() *Catalog {
	return New(
		Record{
			ID:                 "ISO 13485",
			Topic:              "Quality Management Systems for Medical Devices",
			Scope:              "Requirements for quality management system for medical device organizations",
			ProductApplication: "All medical devices and related services",
			PublicationDate:    "2016 (current version)",
			Description:        "Specifies requirements for a quality management system where an organization needs to demonstrate its ability to provide medical devices and related services that consistently meet customer and applicable regulatory requirements.",
		},
		Record{
			ID:                 "ISO 14971",
			Topic:              "Risk Management for Medical Devices",
			Scope:              "Application of risk management to medical devices",
			ProductApplication: "All medical devices throughout their lifecycle",
			PublicationDate:    "2019 (current version)",
			Description:        "Specifies a process for a manufacturer to identify the hazards associated with medical devices, to estimate and evaluate the associated risks, to control these risks, and to monitor the effectiveness of the controls.",
		},
		Record{
			ID:                 "IEC 62304",
			Topic:              "Medical Device Software - Software Life Cycle Processes",
			Scope:              "Software development life cycle processes for medical device software",
			ProductApplication: "Medical device software and software as medical devices",
			PublicationDate:    "2006 (current version)",
			Description:        "Defines the life cycle requirements for medical device software. The processes, activities, and tasks described in this standard establish a common framework for medical device software life cycle processes.",
		},
	)
}
