package handle

import (
	"net/http"
	"sort"

	"tutor-proxy/api/internal/syllabus"
)

type metaResponse struct {
	Boards   []string            `json:"boards"`
	Classes  []string            `json:"classes"`
	Subjects []string            `json:"subjects"`
	Chapters map[string][]string `json:"chapters"`
}

// Meta exposes the board/class/subject/chapter tables so clients can build
// their pickers without hardcoding the syllabus.
func (h *Handle) Meta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}
	boards := make([]string, 0, len(syllabus.AllowedBoards))
	for b := range syllabus.AllowedBoards {
		boards = append(boards, b)
	}
	sort.Strings(boards)

	writeJSON(w, http.StatusOK, metaResponse{
		Boards:   boards,
		Classes:  syllabus.Classes,
		Subjects: syllabus.Subjects,
		Chapters: syllabus.Chapters,
	})
}
