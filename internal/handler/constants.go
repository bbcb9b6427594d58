// Copyright (c) 2025-2026 FlyBZ Aviation
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteSuffixNew is the suffix for "new" routes.
	RouteSuffixNew = "/new"
	// RouteSuffixActivate is the suffix for activation routes.
	RouteSuffixActivate = "/activate"
	// RouteSuffixToggle is the suffix for active-toggle routes.
	RouteSuffixToggle = "/toggle"
	// RouteSuffixDelete is the suffix for delete routes.
	RouteSuffixDelete = "/delete"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"

	// RouteBook is the public booking submission route.
	RouteBook = "/book"
	// RoutePrivacyPolicy is the privacy policy route.
	RoutePrivacyPolicy = "/privacy-policy"
	// RouteTermsAndConditions is the terms and conditions route.
	RouteTermsAndConditions = "/terms-and-conditions"
	// RouteSendBookingEmail is the JSON booking notification endpoint.
	RouteSendBookingEmail = "/functions/send-booking-email"

	// RouteAdmin is the admin panel prefix.
	RouteAdmin = "/admin"
	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteAircraft is the aircraft admin route.
	RouteAircraft = "/aircraft"
	// RouteHero is the hero content admin route.
	RouteHero = "/hero"
	// RouteSettings is the site settings admin route.
	RouteSettings = "/settings"
	// RouteEvents is the events admin route.
	RouteEvents = "/events"

	// RouteAdminLogin is the full login path used in redirects.
	RouteAdminLogin = RouteAdmin + RouteLogin
	// RouteAdminAircraft is the full aircraft list path used in redirects.
	RouteAdminAircraft = RouteAdmin + RouteAircraft
	// RouteAdminHero is the full hero list path used in redirects.
	RouteAdminHero = RouteAdmin + RouteHero
	// RouteAdminSettings is the full settings path used in redirects.
	RouteAdminSettings = RouteAdmin + RouteSettings
)
