package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/meta-ads-navigator/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const formatJSON = "json"

// wantsJSON indica ?format=json; o padrão é o relatório em texto
func wantsJSON(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), formatJSON)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

func respond(w http.ResponseWriter, r *http.Request, result any, rendered string) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, result)
		return
	}

	writeText(w, http.StatusOK, rendered)
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, code, message string) {
	if wantsJSON(r) {
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	writeText(w, apiErrors.StatusFor(code), message)
}

// pathParam lê o parâmetro da rota; vazio ou só espaços responde 400
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName(name))
	if value == "" {
		writeBadRequest(w, r, apiErrors.ErrMissingRequiredData, name+" é obrigatório")
		return "", false
	}

	return value, true
}
