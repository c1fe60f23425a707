package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type Handler struct {
	Log *Log
}

type ListResponse struct {
	Capacity int      `json:"capacity"`
	Records  []Record `json:"records"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListResponse{Capacity: h.Log.Capacity(), Records: h.Log.List()})
}

// Delete removes the record at {index}. Indexes past the end are ignored.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, "Invalid index", http.StatusBadRequest)
		return
	}
	if err := h.Log.Delete(index); err != nil {
		http.Error(w, "History could not be saved", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Log.Clear(); err != nil {
		http.Error(w, "History could not be saved", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func exportName(ext string) string {
	return fmt.Sprintf("catalyst_history_%s.%s", time.Now().Format("20060102_150405"), ext)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Log.WriteCSV(&buf); err != nil {
		log.Printf("CSV export failed: %v", err)
		http.Error(w, "Failed to export history", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportName("csv")+`"`)
	w.Write(buf.Bytes())
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Log.WriteXLSX(&buf); err != nil {
		log.Printf("XLSX export failed: %v", err)
		http.Error(w, "Failed to export history", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportName("xlsx")+`"`)
	w.Write(buf.Bytes())
}
