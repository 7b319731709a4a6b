// Package app wires the client together: the route table, the shell that
// owns auth flows and guard-gated navigation, and the per-entity screens
// built on the generic workflows.
package app

import (
	"github.com/stocklite/inventory-client/internal/core/workflow"
)

const (
	RouteLogin        = "/login"
	RouteRegister     = "/register"
	RouteDashboard    = "/dashboard"
	RouteProducts     = "/products"
	RouteCategories   = "/categories"
	RouteSuppliers    = "/suppliers"
	RouteTransactions = "/transactions"
)

// NewRecordRoute is the create-mode form route for a list route.
func NewRecordRoute(listRoute string) string {
	return listRoute + "/new"
}

// EditRecordRoute is the edit-mode form route for a record.
func EditRecordRoute(listRoute, id string) string {
	return listRoute + "/" + id + "/edit"
}

// routePolarity decides which side of the session a route belongs to. Only
// login and register are anonymous; everything else, including the default
// route, requires a session.
func routePolarity(route string) workflow.Polarity {
	switch route {
	case RouteLogin, RouteRegister:
		return workflow.RequireAnonymous
	default:
		return workflow.RequireAuthenticated
	}
}
