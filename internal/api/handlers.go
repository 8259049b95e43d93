package api

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/provider"
	"github.com/MatLN8/pdf-restruct/internal/restruct"
	"github.com/MatLN8/pdf-restruct/internal/section"
)

// handleExtract runs one extraction over an uploaded document. Form
// field names mirror the CLI option names; extraction is synchronous
// since a run is a bounded single pass over the document.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !provider.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	opts, err := optionsFromForm(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := provider.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc, err := p.Parse(file, filename)
	if err != nil {
		jsonError(w, "parse: "+err.Error(), http.StatusBadRequest)
		return
	}

	sections, err := restruct.ExtractDocument(doc, opts)
	if err != nil {
		status := http.StatusInternalServerError
		var rangeErr *restruct.RangeError
		var patternErr *restruct.PatternError
		if errors.As(err, &rangeErr) || errors.As(err, &patternErr) {
			status = http.StatusBadRequest
		}
		jsonError(w, err.Error(), status)
		return
	}

	out := sections
	if r.FormValue("nested") == "true" {
		out = section.Nest(sections)
	}

	data, err := restruct.EncodeJSON(out)
	if err != nil {
		jsonError(w, "encode: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// optionsFromForm maps form values onto pipeline options.
func optionsFromForm(r *http.Request) (restruct.Options, error) {
	opts := restruct.DefaultOptions()

	if v := r.FormValue("heading_regex"); v != "" {
		opts.HeadingRegex = v
	}
	opts.StartHeaderNumber = r.FormValue("start_header_number")
	opts.RemoveIfContains = r.Form["remove_header_footer_if_contains"]
	opts.StrictSequence = r.FormValue("strict_sequence") == "true"

	floats := map[string]*float64{
		"min_font_size": &opts.MinFontSize,
		"header_height": &opts.HeaderHeight,
		"footer_height": &opts.FooterHeight,
	}
	for name, dst := range floats {
		if v := r.FormValue(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return opts, fmt.Errorf("%s: %w", name, err)
			}
			*dst = f
		}
	}

	ints := map[string]*int{
		"start_page":     &opts.StartPage,
		"end_page":       &opts.EndPage,
		"page_tolerance": &opts.PageTolerance,
	}
	for name, dst := range ints {
		if v := r.FormValue(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return opts, fmt.Errorf("%s: %w", name, err)
			}
			*dst = n
		}
	}

	return opts, nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, msg)
}
