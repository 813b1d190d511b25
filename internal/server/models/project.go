package models

import (
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/common"
)

// Project names the construction project a lift belongs to.
type Project string

const (
	ProjectAP7P1  Project = "AP7P1"
	ProjectAP7P2  Project = "AP7P2"
	ProjectOffice Project = "Office"
)

// Projects lists every known project in display order.
func Projects() []Project {
	return []Project{ProjectAP7P1, ProjectAP7P2, ProjectOffice}
}

// ParseProject accepts only the known project names.
func ParseProject(s string) (Project, error) {
	for _, p := range Projects() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown project %q", common.ErrorValidation, s)
}

func (p Project) String() string {
	return string(p)
}
