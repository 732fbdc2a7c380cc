package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PortfolioEntry documents the fields a showcased client record usually
// carries. Entries are stored schemaless (see store.PortfolioStore) so the
// admin panel can evolve the shape without a migration; this type is the
// reference shape used by seeds and the GraphQL schema.
type PortfolioEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"         json:"id"`
	Name        string             `bson:"name,omitempty"        json:"name,omitempty"`
	Logo        string             `bson:"logo,omitempty"        json:"logo,omitempty"`
	ProjectName string             `bson:"projectName,omitempty" json:"projectName,omitempty"`
	Category    string             `bson:"category,omitempty"    json:"category,omitempty"`
	Results     string             `bson:"results,omitempty"     json:"results,omitempty"`
	Testimonial string             `bson:"testimonial,omitempty" json:"testimonial,omitempty"`
	Rating      float64            `bson:"rating,omitempty"      json:"rating,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"             json:"createdAt"`
}

// Doc flattens the entry into the schemaless document form the store uses.
func (p PortfolioEntry) Doc() map[string]interface{} {
	doc := map[string]interface{}{
		"name":        p.Name,
		"logo":        p.Logo,
		"projectName": p.ProjectName,
		"category":    p.Category,
		"results":     p.Results,
		"testimonial": p.Testimonial,
		"rating":      p.Rating,
	}
	for k, v := range doc {
		if s, ok := v.(string); ok && s == "" {
			delete(doc, k)
		}
	}
	return doc
}
