package word

import (
	"archive/zip"
	"io"
)

// Placeholders replaced in word/document.xml
const (
	phTitle          = "{{Title}}"
	phDate           = "{{Date}}"
	phSchema         = "{{Schema}}"
	phTotalEndpoints = "{{TotalEndpoints}}"
	phTotalFolders   = "{{TotalFolders}}"
	phContent        = "{{Content}}"
)

var templateParts = []struct {
	name string
	body string
}{
	{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
	{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
	// Required by some parsers
	{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
	{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>` + phTitle + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Date: ` + phDate + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Schema: ` + phSchema + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Total Endpoints: ` + phTotalEndpoints + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Folders: ` + phTotalFolders + `</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">` + phContent + `</w:t></w:r></w:p>
</w:body>
</w:document>`},
}

// writeTemplate writes a minimal docx package with placeholders
func writeTemplate(out io.Writer) error {
	w := zip.NewWriter(out)
	for _, part := range templateParts {
		f, err := w.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := f.Write([]byte(part.body)); err != nil {
			return err
		}
	}
	return w.Close()
}
