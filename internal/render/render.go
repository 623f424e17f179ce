// Package render writes type catalog members in one of the SDK record formats.
package render

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nx-sdk/nxsdk-go/pkg/nxtypes"
)

// ErrUnsupportedFormat is returned when asked to render a record type that has
// no encoder, including the RecordTypeMax sentinel.
var ErrUnsupportedFormat = errors.New("unsupported record format")

type memberRecord struct {
	XMLName xml.Name `json:"-" xml:"member"`
	Group   string   `json:"group" xml:"group,attr"`
	Name    string   `json:"name" xml:"name,attr"`
	SDKName string   `json:"sdk_name" xml:"sdk_name,attr"`
	Value   int32    `json:"value" xml:"value,attr"`
}

type memberList struct {
	XMLName xml.Name       `xml:"members"`
	Members []memberRecord `xml:"member"`
}

func toRecords(members []nxtypes.Member) []memberRecord {
	records := make([]memberRecord, 0, len(members))
	for _, m := range members {
		records = append(records, memberRecord{
			Group:   m.Group.String(),
			Name:    m.Name,
			SDKName: m.SDKName,
			Value:   m.Value,
		})
	}
	return records
}

// Render writes members to w encoded as format.
func Render(w io.Writer, format nxtypes.RecordType, members []nxtypes.Member) error {
	switch format {
	case nxtypes.RecordTypeText:
		return renderText(w, members)
	case nxtypes.RecordTypeJSON:
		return renderJSON(w, members)
	case nxtypes.RecordTypeXML:
		return renderXML(w, members)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func renderText(w io.Writer, members []nxtypes.Member) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tNAME\tSDK_NAME\tVALUE")
	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", m.Group, m.Name, m.SDKName, m.Value)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

func renderJSON(w io.Writer, members []nxtypes.Member) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toRecords(members)); err != nil {
		return fmt.Errorf("failed to encode json output: %w", err)
	}
	return nil
}

func renderXML(w io.Writer, members []nxtypes.Member) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write xml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(memberList{Members: toRecords(members)}); err != nil {
		return fmt.Errorf("failed to encode xml output: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write xml output: %w", err)
	}
	return nil
}
