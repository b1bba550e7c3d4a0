// =============================================================================
// TR-069 Excelifier - Device Model Parser
// =============================================================================
//
// This module loads a TR-069 (CWMP) data model definition and exposes the
// parts the converter needs: the model name, its objects with their
// parameters, and its conformance profiles.
//
// DOCUMENT STRUCTURE (relevant subset):
//
//   <dm:document>
//     <model name="Device:2.11">
//       <object name="Device.WiFi." access="readOnly">
//         <description>...</description>
//         <parameter name="Enable" access="readWrite" activeNotify="canDeny">
//           <description>...</description>
//           <syntax><boolean/><default type="object" value="false"/></syntax>
//         </parameter>
//       </object>
//       <profile name="WiFiRadio:1" base="" extends="">
//         <object ref="Device.WiFi.Radio.{i}." requirement="present">
//           <parameter ref="Enable" requirement="readWrite"/>
//         </object>
//       </profile>
//     </model>
//   </dm:document>
//
// Everything outside the first <model> element is ignored. Attributes are
// kept as pointers so that a missing attribute can be told apart from an
// empty one; the validation package decides which absences are fatal.
//
// =============================================================================

package modelparser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"golang.org/x/net/html/charset"
)

// ErrNoModel is returned when the document has no <model> element.
var ErrNoModel = errors.New("document has no model element")

// =============================================================================
// MODEL STRUCTURES
// =============================================================================

// document is the root element; its name and namespace are not checked.
type document struct {
	Models []Model `xml:"model"`
}

// Model is the root entity of one conversion run.
type Model struct {
	Name     *string   `xml:"name,attr"`
	Objects  []Object  `xml:"object"`
	Profiles []Profile `xml:"profile"`
}

// Object is a configuration node with zero or more parameters.
type Object struct {
	Name        *string      `xml:"name,attr"`
	Access      *string      `xml:"access,attr"`
	Description *Description `xml:"description"`
	Parameters  []Parameter  `xml:"parameter"`
}

// Parameter is a single value under an Object.
type Parameter struct {
	Name         *string      `xml:"name,attr"`
	Access       *string      `xml:"access,attr"`
	Status       *string      `xml:"status,attr"`
	ActiveNotify *string      `xml:"activeNotify,attr"`
	ForcedInform *string      `xml:"forcedInform,attr"`
	Description  *Description `xml:"description"`
	Syntax       *Node        `xml:"syntax"`
}

// Description holds free text that may contain {{...}} placeholders.
type Description struct {
	Text string `xml:",chardata"`
}

// Profile is a named conformance bundle.
type Profile struct {
	Name    *string      `xml:"name,attr"`
	Base    *string      `xml:"base,attr"`
	Extends *string      `xml:"extends,attr"`
	Objects []ProfileRef `xml:"object"`
}

// ProfileRef references an object or parameter from a profile together
// with its requirement level. Only object references carry Parameters.
type ProfileRef struct {
	Ref         *string      `xml:"ref,attr"`
	Requirement *string      `xml:"requirement,attr"`
	Parameters  []ProfileRef `xml:"parameter"`
}

// Node is a generic element used for the open-ended <syntax> subtree.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Node     `xml:",any"`
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Load reads and parses the model document at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	model, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

// Parse decodes a model document held in memory and returns its first
// <model> element.
func Parse(data []byte) (*Model, error) {
	var doc document

	decoder := xml.NewDecoder(bytes.NewReader(data))
	// Non-UTF-8 declarations (e.g. ISO-8859-1) are transcoded; unknown
	// encodings fail the parse.
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	if len(doc.Models) == 0 {
		return nil, ErrNoModel
	}
	return &doc.Models[0], nil
}

// =============================================================================
// NODE HELPERS
// =============================================================================

// Tag returns the local element name.
func (n Node) Tag() string {
	return n.XMLName.Local
}

// Attr returns the value of the named attribute and whether it is present.
func (n Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child with the given tag.
func (n Node) Child(tag string) (Node, bool) {
	for _, c := range n.Children {
		if c.Tag() == tag {
			return c, true
		}
	}
	return Node{}, false
}

// Find returns the first descendant with the given tag, searching depth
// first in document order.
func (n Node) Find(tag string) (Node, bool) {
	for _, c := range n.Children {
		if c.Tag() == tag {
			return c, true
		}
		if found, ok := c.Find(tag); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindAll returns every descendant with the given tag in document order.
func (n Node) FindAll(tag string) []Node {
	var found []Node
	for _, c := range n.Children {
		if c.Tag() == tag {
			found = append(found, c)
		}
		found = append(found, c.FindAll(tag)...)
	}
	return found
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// Value dereferences an optional attribute, returning "" when absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
