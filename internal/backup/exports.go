package backup

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"artvault/internal/domain/inventory"
)

// CSV header, Indonesian column names as the report screen shows them.
var csvHeader = []string{"ID", "Judul", "Tema", "Dimensi", "Medium", "Harga", "Status", "Lokasi", "Proyek", "Tanggal"}

// WriteCSV emits the flat painting report table. The project column is the
// referenced project's name, blank when the painting has no project or the
// reference dangles. Write-only: this format is never read back.
func WriteCSV(w io.Writer, paintings []inventory.Painting, projects []inventory.Project) error {
	names := make(map[uint]string, len(projects))
	for _, pr := range projects {
		names[pr.ID] = pr.Name
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range paintings {
		projectName := ""
		if p.ProjectID != nil {
			projectName = names[*p.ProjectID]
		}
		row := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Title,
			p.Theme,
			p.Dimensions,
			p.Medium,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			string(p.Status),
			p.Location,
			projectName,
			p.CreationDate.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePaintingsJSON emits the painting collection as a bare JSON array —
// no wrapper object, no version field. Write-only.
func WritePaintingsJSON(w io.Writer, paintings []inventory.Painting) error {
	if paintings == nil {
		paintings = []inventory.Painting{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(paintings)
}
