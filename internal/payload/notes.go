package payload

import (
	"fmt"
	"strings"

	"github.com/atozflooring/po-extract/internal/extract"
)

// privateNotes summarizes the money and people on the job for internal
// eyes only.
func privateNotes(rec *extract.Record, phone3, phone4 string) string {
	var names []string
	for _, c := range rec.AlternateContacts {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}

	return fmt.Sprintf("PO VALUE: $%s\nSITE CONTACT: %s\nALTERNATE CONTACT: %s\nOTHER CONTACTS: %s\nPHONE1: %s\nPHONE2: %s",
		rec.DollarValue.String(),
		siteContactName(rec),
		rec.AlternateContactName,
		strings.Join(names, ", "),
		phone3,
		phone4,
	)
}

// publicNotes carries the work description onto customer-visible
// paperwork.
func publicNotes(rec *extract.Record) string {
	return fmt.Sprintf("JOB DESCRIPTION: %s\nWORKS REQUIRED: %s\nSCOPE OF WORKS: %s",
		rec.DescriptionOfWorks,
		rec.DescriptionOfWorks,
		rec.ScopeOfWork,
	)
}

// workOrderNotes is what the installer sees: who to call on site.
func workOrderNotes(rec *extract.Record, phone3, phone4 string) string {
	var all []string
	for _, c := range rec.AlternateContacts {
		if c.Name == "" {
			continue
		}
		all = append(all, fmt.Sprintf("%s: %s %s", c.Type, c.Name, c.Phone))
	}

	return fmt.Sprintf("SITE CONTACT: %s\nALTERNATE CONTACT: %s\nPHONE1: %s\nPHONE2: %s\nALL CONTACTS: %s",
		siteContactName(rec),
		rec.AlternateContactName,
		phone3,
		phone4,
		strings.Join(all, ", "),
	)
}

func siteContactName(rec *extract.Record) string {
	if rec.CustomerName != "" {
		return rec.CustomerName
	}
	return strings.TrimSpace(rec.FirstName + " " + rec.LastName)
}
