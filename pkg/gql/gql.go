// Package gql exposes a read-only GraphQL query surface over the public
// portfolio listing, for frontends that prefer field selection over the
// fixed REST payload.
package gql

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/logger"
	"github.com/webnexa/api/pkg/response"
)

// clientType mirrors the well-known fields of a portfolio document.
// Entries are schemaless, so absent fields resolve to null.
var clientType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Client",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.String, Resolve: mapField("_id")},
		"name":        &graphql.Field{Type: graphql.String},
		"logo":        &graphql.Field{Type: graphql.String},
		"projectName": &graphql.Field{Type: graphql.String},
		"category":    &graphql.Field{Type: graphql.String},
		"results":     &graphql.Field{Type: graphql.String},
		"testimonial": &graphql.Field{Type: graphql.String},
		"rating":      &graphql.Field{Type: graphql.Float},
		"createdAt": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				doc, ok := p.Source.(map[string]interface{})
				if !ok {
					return nil, nil
				}
				switch v := doc["createdAt"].(type) {
				case time.Time:
					return v.UTC().Format(time.RFC3339), nil
				case string:
					return v, nil
				default:
					return nil, nil
				}
			},
		},
	},
})

// mapField resolves a document key whose name differs from the GraphQL field.
func mapField(key string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		doc, ok := p.Source.(map[string]interface{})
		if !ok {
			return nil, nil
		}
		return doc[key], nil
	}
}

// NewSchema builds the query schema backed by the given portfolio store.
func NewSchema(portfolio store.PortfolioStore) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"clients": &graphql.Field{
				Type: graphql.NewList(clientType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return portfolio.List(p.Context)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler returns an http.HandlerFunc executing GraphQL queries against
// the schema. Mutations are not part of the schema, so the surface stays
// read only regardless of the query sent.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid GraphQL request body")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})

		if len(result.Errors) > 0 {
			logger.WithCtx(r.Context()).Warn("graphql query failed", "errors", result.Errors)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}
}
