// Package models defines the domain entities shared by the Tara client.
//
// Every entity is server-owned: the client never originates an identifier,
// and local values are always copies of the last successful fetch. JSON tags
// mirror the wire shapes of the REST API exactly (snake_case).
//
// Aggregate roots (Event, Checklist, SavingsGoal) own their sub-entities
// (tags, items, contributions); sub-entities are never addressed outside
// their parent in the API.
package models
