package httpserver

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/customerbook/internal/adapters/export"
	"github.com/phenrril/customerbook/internal/domain"
	"github.com/phenrril/customerbook/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	tmpl      *template.Template
	customers *usecase.CustomerUC
}

func New(t *template.Template, customers *usecase.CustomerUC) http.Handler {
	s := &Server{tmpl: t, customers: customers, mux: http.NewServeMux()}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/customers", s.apiCustomers)
	s.mux.HandleFunc("/api/customers/export/xlsx", s.apiExportXLSX)
	s.mux.HandleFunc("/api/customers/export/pdf", s.apiExportPDF)
	s.mux.HandleFunc("/api/customers/", s.apiCustomerByID)

	// auth placeholder, see routes/api in the admin SPA era
	s.mux.HandleFunc("/api/user", s.apiUser)

	s.mux.HandleFunc("/", s.handleCustomersPage)
	s.mux.HandleFunc("/customers/new", s.handleCustomerNewPage)
	s.mux.HandleFunc("/customers/", s.handleCustomerEditPage)
}

// --- JSON API ---

func (s *Server) apiCustomers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		f := parseFilter(r.URL.Query())
		list, meta, err := s.customers.List(r.Context(), f)
		if err != nil {
			log.Error().Err(err).Msg("list customers")
			writeError(w, 500, "Server error")
			return
		}
		if list == nil {
			list = []domain.Customer{}
		}
		writeJSON(w, 200, map[string]any{"data": list, "meta": meta})
	case http.MethodPost:
		var in domain.CustomerInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, 400, "Invalid JSON payload")
			return
		}
		c, err := s.customers.Create(r.Context(), in)
		if err != nil {
			s.writeCustomerError(w, err, "create customer")
			return
		}
		writeJSON(w, 201, c)
	default:
		writeError(w, 405, "Method not allowed")
	}
}

func (s *Server) apiCustomerByID(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r.URL.Path)
	if !ok {
		writeError(w, 404, "Customer not found")
		return
	}
	switch r.Method {
	case http.MethodGet:
		c, err := s.customers.Get(r.Context(), id)
		if err != nil {
			s.writeCustomerError(w, err, "get customer")
			return
		}
		writeJSON(w, 200, c)
	case http.MethodPut:
		var in domain.CustomerInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, 400, "Invalid JSON payload")
			return
		}
		c, err := s.customers.Update(r.Context(), id, in)
		if err != nil {
			s.writeCustomerError(w, err, "update customer")
			return
		}
		writeJSON(w, 200, c)
	case http.MethodDelete:
		if err := s.customers.Delete(r.Context(), id); err != nil {
			s.writeCustomerError(w, err, "delete customer")
			return
		}
		writeJSON(w, 200, map[string]any{"message": "Customer deleted"})
	default:
		writeError(w, 405, "Method not allowed")
	}
}

func (s *Server) apiUser(w http.ResponseWriter, r *http.Request) {
	// single stubbed auth route, the registry itself carries no login
	writeJSON(w, 501, map[string]any{"message": "Authentication is not configured"})
}

func (s *Server) apiExportXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, 405, "Method not allowed")
		return
	}
	list, _, err := s.customers.List(r.Context(), parseFilter(r.URL.Query()))
	if err != nil {
		log.Error().Err(err).Msg("export xlsx: list")
		writeError(w, 500, "Server error")
		return
	}
	f, err := export.Workbook(list)
	if err != nil {
		log.Error().Err(err).Msg("export xlsx: build")
		writeError(w, 500, "Server error")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename=customers.xlsx`)
	if _, err := f.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("export xlsx: write")
	}
}

func (s *Server) apiExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, 405, "Method not allowed")
		return
	}
	list, _, err := s.customers.List(r.Context(), parseFilter(r.URL.Query()))
	if err != nil {
		log.Error().Err(err).Msg("export pdf: list")
		writeError(w, 500, "Server error")
		return
	}
	buf, err := export.PDF(list)
	if err != nil {
		log.Error().Err(err).Msg("export pdf: build")
		writeError(w, 500, "Server error")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=customers.pdf`)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("export pdf: write")
	}
}

// --- admin pages ---

func (s *Server) handleCustomersPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, "customers.html", map[string]any{})
}

func (s *Server) handleCustomerNewPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "customer_form.html", map[string]any{"Mode": "create", "ID": 0})
}

// /customers/{id}/edit
func (s *Server) handleCustomerEditPage(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/customers/")
	rest = strings.TrimSuffix(rest, "/edit")
	id, err := strconv.ParseUint(rest, 10, 64)
	if err != nil || id == 0 {
		http.NotFound(w, r)
		return
	}
	s.render(w, "customer_form.html", map[string]any{"Mode": "edit", "ID": id})
}

// --- helpers ---

func customerID(path string) (uint, bool) {
	raw := strings.TrimPrefix(path, "/api/customers/")
	if raw == "" || strings.Contains(raw, "/") {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parseFilter(qv url.Values) domain.CustomerFilter {
	page, _ := strconv.Atoi(qv.Get("page"))
	perPage, _ := strconv.Atoi(qv.Get("per_page"))
	return domain.CustomerFilter{
		Search:           qv.Get("search"),
		FullName:         qv.Get("full_name"),
		PhoneNumber:      qv.Get("phone_number"),
		TIN:              qv.Get("tin"),
		VATRegNo:         qv.Get("vat_reg_no"),
		RegistrationDate: qv.Get("registration_date"),
		Address:          qv.Get("address"),
		Status:           qv.Get("status"),
		Page:             page,
		PerPage:          perPage,
	}
}

func (s *Server) writeCustomerError(w http.ResponseWriter, err error, op string) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, 404, "Customer not found")
	case errors.As(err, &ve):
		writeJSON(w, 422, map[string]any{
			"message": "The given data was invalid.",
			"errors":  ve.Fields,
		})
	default:
		log.Error().Err(err).Msg(op)
		writeError(w, 500, "Server error")
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data map[string]any) {
	if _, exists := data["Year"]; !exists {
		data["Year"] = time.Now().Year()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("tpl", name).Msg("render")
		http.Error(w, "tpl", 500)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"message": msg})
}
