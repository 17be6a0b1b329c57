// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/YZcontent/yz-ad-club-backend/internal/app"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with a JSON [models.ErrorResponse] carrying
// "Method Not Allowed" and an Allow header listing the methods registered for
// the matched route. If the requested method IS registered for the route, the
// request is forwarded to the router's normal ServeHTTP pipeline.
//
// The lookup compares each route's pattern against the raw request path
// ([http.Request.URL.Path]). Only exact pattern matches are considered.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; ok {
			router.ServeHTTP(w, r)
			return
		}

		if allowed := allowedMethods(foundRoute); allowed != "" {
			w.Header().Set("Allow", allowed)
		}
		writeErrorMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(route chi.Route) string {
	methods := make([]string, 0, len(route.Handlers))
	for m := range route.Handlers {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
