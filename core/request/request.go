// Package request loads quote requests from HCL or HCL-JSON documents.
//
// A request document looks like:
//
//	risk_score  = 250.75
//	bundles     = ["Jewelry"]
//	named_items = ["FujiBike:Bicycles:500", "Phone:Electronics:200"]
//
// Decoding only checks the document shape. Whether the request can be
// quoted is decided by the quote generator.
package request

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"cover-quote/internal/errors"
)

// Request is a quote request as supplied by a caller
type Request struct {
	// RiskScore is the caller's wrisk score
	RiskScore float64 `hcl:"risk_score" json:"risk_score" yaml:"risk_score"`

	// Bundles lists the sections bundle cover is requested for
	Bundles []string `hcl:"bundles,optional" json:"bundles,omitempty" yaml:"bundles,omitempty"`

	// NamedItems lists name:section:value descriptors
	NamedItems []string `hcl:"named_items,optional" json:"named_items,omitempty" yaml:"named_items,omitempty"`
}

// Covers returns the number of covers requested
func (r *Request) Covers() int {
	return len(r.Bundles) + len(r.NamedItems)
}

// Load reads and decodes a request file. Files ending in .json are parsed
// as HCL-JSON, everything else as native HCL.
func Load(path string) (*Request, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read request file", err).WithContext("file", path)
	}
	return Parse(src, path)
}

// Parse decodes a request document. filename selects the syntax and is
// used in diagnostics.
func Parse(src []byte, filename string) (*Request, error) {
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		file, diags = parser.ParseJSON(src, filename)
	} else {
		file, diags = parser.ParseHCL(src, filename)
	}
	if diags.HasErrors() {
		return nil, diagnosticsError("failed to parse request", filename, diags)
	}

	var req Request
	if diags := gohcl.DecodeBody(file.Body, nil, &req); diags.HasErrors() {
		return nil, diagnosticsError("failed to decode request", filename, diags)
	}
	return &req, nil
}

func diagnosticsError(message, filename string, diags hcl.Diagnostics) error {
	err := errors.Parsing(message, diags).WithContext("file", filename)
	for _, diag := range diags {
		if diag.Severity == hcl.DiagError && diag.Subject != nil {
			err.WithContext("line", diag.Subject.Start.Line)
			break
		}
	}
	return err
}
