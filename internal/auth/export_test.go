package auth

import "net/http"

// Test hooks exposing unexported handlers to the external test package.

func (h *Handler) ShowLoginForTest(w http.ResponseWriter, r *http.Request) { h.showLogin(w, r) }

func (h *Handler) HandleLoginForTest(w http.ResponseWriter, r *http.Request) { h.handleLogin(w, r) }

func (h *Handler) HandleMeForTest(w http.ResponseWriter, r *http.Request) { h.handleMe(w, r) }
