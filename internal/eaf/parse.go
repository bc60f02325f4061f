// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package eaf

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Parse decodes an ELAN document from a reader
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode ELAN document: %w", err)
	}

	// The decoder accepts any root element; reject anything that is not
	// an ANNOTATION_DOCUMENT before handing the tree to extraction.
	if doc.XMLName.Local != "ANNOTATION_DOCUMENT" {
		return nil, fmt.Errorf("not an ELAN document: root element is <%s>, expected <ANNOTATION_DOCUMENT>", doc.XMLName.Local)
	}

	return &doc, nil
}

// ParseFile decodes an ELAN document from a .eaf file on disk
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open eaf file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}
