package domain

import "time"

// EvaluationLeafletData addresses one translated segment within a leaflet.
// The triple (leaflet_id, section_number, array_location) is the natural key
// used to target performance record updates.
type EvaluationLeafletData struct {
	LeafletID     string `bson:"leaflet_id" json:"leaflet_id"`
	SectionNumber int    `bson:"section_number" json:"section_number"`
	ArrayLocation int    `bson:"array_location" json:"array_location"`
}

// TranslationRecord is one measured translation event for a leaflet section.
// Records are inserted after a translation completes and may later be
// updated in place by natural key, e.g. to attach evaluation scores.
type TranslationRecord struct {
	EvaluationLeafletData EvaluationLeafletData  `bson:"evaluation_leaflet_data" json:"evaluation_leaflet_data"`
	Model                 string                 `bson:"model" json:"model"`
	TranslatedText        string                 `bson:"translated_text" json:"translated_text"`
	Metrics               map[string]interface{} `bson:"metrics,omitempty" json:"metrics,omitempty"`
}

// LeafletHistory is a persisted record of one full leaflet translation
// submission. ID is caller-assigned and is the lookup key for retrieval and
// deletion; the store's internal identity is never exposed through it.
type LeafletHistory struct {
	ID             string           `bson:"id" json:"id"`
	Name           string           `bson:"name,omitempty" json:"name,omitempty"`
	SourceLanguage string           `bson:"source_language,omitempty" json:"source_language,omitempty"`
	TargetLanguage string           `bson:"target_language,omitempty" json:"target_language,omitempty"`
	Sections       []LeafletSection `bson:"sections,omitempty" json:"sections,omitempty"`
	CreatedAt      time.Time        `bson:"created_at" json:"created_at"`
}

// LeafletSection is one section of a submitted leaflet, holding the source
// segments and their translations in array order.
type LeafletSection struct {
	SectionNumber int      `bson:"section_number" json:"section_number"`
	Title         string   `bson:"title,omitempty" json:"title,omitempty"`
	Source        []string `bson:"source,omitempty" json:"source,omitempty"`
	Translated    []string `bson:"translated,omitempty" json:"translated,omitempty"`
}
