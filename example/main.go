// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main provides examples of using the negotiation package.
package main

import (
	"fmt"
	"log"
	"net/http"

	"rivaas.dev/negotiation"
	"rivaas.dev/negotiation/respond"
	"rivaas.dev/negotiation/respond/yaml"
)

type server struct {
	responder *respond.Responder
}

func main() {
	mux := http.NewServeMux()

	srv := &server{
		responder: respond.MustNew(
			respond.JSON(),
			respond.XML(),
			yaml.New(),
		),
	}

	// Example 1: One-call negotiated responses
	respondExample(mux, srv)

	// Example 2: Negotiate once in middleware, encode in handlers
	middlewareExample(mux, srv)

	// Example 3: Manual negotiation for custom handling
	manualExample(mux)

	log.Println("Server starting on http://localhost:8080")
	log.Println("Try:")
	log.Println(`  curl localhost:8080/user`)
	log.Println(`  curl -H "Accept: application/yaml" localhost:8080/user`)
	log.Println(`  curl -H "Accept: application/xml;q=0.9, application/json;q=0.1" localhost:8080/user`)
	log.Println(`  curl -H "Accept: image/png" -i localhost:8080/user`)
	log.Println(`  curl -H "Accept: text/html" localhost:8080/greeting`)
	log.Fatal(http.ListenAndServe(":8080", mux))
}

type user struct {
	Name  string `json:"name" xml:"name" yaml:"name"`
	Email string `json:"email" xml:"email" yaml:"email"`
}

// Example 1: Respond picks the encoder per request and writes everything.
func respondExample(mux *http.ServeMux, srv *server) {
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		_ = srv.responder.Respond(w, r, http.StatusOK, user{
			Name:  "Alice",
			Email: "alice@example.com",
		})
	})
}

// Example 2: Middleware negotiates up front; handlers just encode.
func middlewareExample(mux *http.ServeMux, srv *server) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		enc, _ := respond.FromContext(r.Context())

		w.Header().Set("Content-Type", enc.ContentType())
		w.WriteHeader(http.StatusOK)
		_ = enc.Encode(w, map[string]string{"status": "healthy"})
	})

	mux.Handle("/health", respond.Middleware(srv.responder)(handler))
}

// Example 3: Use the Negotiator directly when representations are not
// encoder-shaped, like choosing between HTML and plain text.
func manualExample(mux *http.ServeMux) {
	neg := negotiation.MustNew([]string{"text/plain", "text/html"})

	mux.HandleFunc("/greeting", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept")

		switch neg.Negotiate(r.Header.Get("Accept"), negotiation.WithPermissive()) {
		case "text/html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, "<h1>Hello!</h1>\n")
		case "text/plain":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			fmt.Fprint(w, "Hello!\n")
		default:
			http.Error(w, "no acceptable representation", http.StatusNotAcceptable)
		}
	})
}
