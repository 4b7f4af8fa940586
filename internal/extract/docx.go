package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"strings"
)

// convertToHTML renders a .docx body as a minimal HTML fragment with
// paragraph granularity: heading-styled paragraphs become h1/h2, body
// paragraphs become p, bold runs become strong, and embedded images
// become img elements carrying their relationship id in data-rel-id.
// It also returns the relationship map (rId -> target path) needed to
// resolve those image references against the archive.
func convertToHTML(data []byte) (string, map[string]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("opening docx archive: %w", err)
	}

	fileIndex := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		fileIndex[f.Name] = f
	}

	docFile := fileIndex["word/document.xml"]
	if docFile == nil {
		return "", nil, fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", nil, fmt.Errorf("opening document.xml: %w", err)
	}
	defer rc.Close()

	docXML, err := io.ReadAll(rc)
	if err != nil {
		return "", nil, err
	}

	rels := parseDocxRels(fileIndex)

	fragment, err := renderDocxHTML(docXML)
	if err != nil {
		return "", nil, fmt.Errorf("parsing document.xml: %w", err)
	}
	return fragment, rels, nil
}

// renderDocxHTML walks the document XML token stream and emits one
// HTML block element per w:p paragraph.
func renderDocxHTML(docXML []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))

	var out strings.Builder

	inPara := false
	inPPr := false
	inRun := false
	inRPr := false
	inText := false
	runBold := false
	paraStyle := ""
	var runText strings.Builder
	var paraBody strings.Builder

	flushRun := func() {
		text := runText.String()
		runText.Reset()
		if text == "" {
			return
		}
		escaped := html.EscapeString(text)
		if runBold {
			paraBody.WriteString("<strong>" + escaped + "</strong>")
		} else {
			paraBody.WriteString(escaped)
		}
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				paraStyle = ""
				paraBody.Reset()
			case "pPr":
				if inPara {
					inPPr = true
				}
			case "pStyle":
				if inPPr {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							paraStyle = attr.Value
						}
					}
				}
			case "r":
				if inPara {
					inRun = true
					runBold = false
				}
			case "rPr":
				if inRun {
					inRPr = true
				}
			case "b":
				if inRPr {
					runBold = boldAttrEnabled(t.Attr)
				}
			case "t":
				if inRun {
					inText = true
				}
			case "br", "tab":
				if inRun {
					runText.WriteString(" ")
				}
			case "blip":
				if !inPara {
					continue
				}
				for _, attr := range t.Attr {
					if attr.Name.Local == "embed" && attr.Value != "" {
						paraBody.WriteString(`<img data-rel-id="` + html.EscapeString(attr.Value) + `"/>`)
						break
					}
				}
			}

		case xml.CharData:
			if inText {
				runText.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "rPr":
				inRPr = false
			case "r":
				if inRun {
					flushRun()
					inRun = false
				}
			case "pPr":
				inPPr = false
			case "p":
				if inPara {
					tag := blockTag(paraStyle)
					out.WriteString("<" + tag + ">" + paraBody.String() + "</" + tag + ">\n")
					inPara = false
				}
			}
		}
	}

	return out.String(), nil
}

// blockTag maps a docx paragraph style to the HTML element the
// normalizer emits for it.
func blockTag(style string) string {
	lower := strings.ToLower(style)
	switch {
	case strings.HasPrefix(lower, "title"), lower == "heading1", lower == "heading 1":
		return "h1"
	case strings.HasPrefix(lower, "heading"):
		return "h2"
	default:
		return "p"
	}
}

// boldAttrEnabled interprets the optional val attribute of w:b.
// A bare <w:b/> means bold; val of 0/false/none disables it.
func boldAttrEnabled(attrs []xml.Attr) bool {
	for _, attr := range attrs {
		if attr.Name.Local == "val" {
			switch strings.ToLower(attr.Value) {
			case "0", "false", "none":
				return false
			}
		}
	}
	return true
}

// parseDocxRels reads word/_rels/document.xml.rels and returns a map
// of rId -> target path. Missing or malformed rels are not an error;
// they only disable image resolution.
func parseDocxRels(fileIndex map[string]*zip.File) map[string]string {
	relsFile := fileIndex["word/_rels/document.xml.rels"]
	if relsFile == nil {
		return nil
	}

	rc, err := relsFile.Open()
	if err != nil {
		return nil
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil
	}

	var rels docxRelationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil
	}

	result := make(map[string]string, len(rels.Rels))
	for _, rel := range rels.Rels {
		result[rel.ID] = rel.Target
	}
	return result
}

type docxRelationships struct {
	XMLName xml.Name           `xml:"Relationships"`
	Rels    []docxRelationship `xml:"Relationship"`
}

type docxRelationship struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
	Type   string `xml:"Type,attr"`
}
