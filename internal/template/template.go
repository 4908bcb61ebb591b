package template

import (
	"fmt"
	"regexp"
)

// Key identifies a builder template.
type Key string

const (
	KeyAmbrose               Key = "ambrose"
	KeyProfileBuild          Key = "profile_build"
	KeyCampbell              Key = "campbell"
	KeyRizon                 Key = "rizon"
	KeyAustralianRestoration Key = "australian_restoration"
	KeyTownsend              Key = "townsend"
	KeyOneSolutions          Key = "one_solutions"
	KeyJohnsLyng             Key = "johns_lyng"
	KeyGeneric               Key = "generic"
)

// Template holds the compiled pattern lists for one builder's purchase
// order layout. Pattern lists are ordered by priority; the first match
// wins. Field patterns capture the value in group 1.
type Template struct {
	Key         Key
	Name        string
	Aliases     []string
	Signatures  []*regexp.Regexp
	PO          []*regexp.Regexp
	Customer    []*regexp.Regexp
	Description []*regexp.Regexp
	Dollar      []*regexp.Regexp
	Address     []*regexp.Regexp
	// Section header that precedes supervisor details.
	SupervisorSection *regexp.Regexp
	CommencementDate  []*regexp.Regexp
	CompletionDate    []*regexp.Regexp
}

// ci compiles a list of case-insensitive field patterns.
func ci(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile("(?i)"+p))
	}
	return out
}

// registry maps template keys to their compiled templates. Built once at
// package init and treated as immutable from then on.
var registry = map[Key]*Template{
	KeyAmbrose: {
		Key:     KeyAmbrose,
		Name:    "Ambrose Construct Group",
		Aliases: []string{"ambrose", "ambrose construct", "ambrose construction"},
		Signatures: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ambrose\s+construct`),
			regexp.MustCompile(`20\d{6}-\d{2}`),
		},
		PO: ci(
			`P\.O\.\s*No:?\s*(20\d{6}-\d{2})`,
			`PO[:\s#]+(20\d{6}-\d{2})`,
			`Purchase\s+Order[:\s#]+(20\d{6}-\d{2})`,
			`Order\s+Number[:\s#]+(20\d{6}-\d{2})`,
		),
		Customer: ci(
			`Insured\s+Owner:?\s*([A-Za-z\s\-'\.]+?)(?:\n|Authorised|$)`,
			`Insured:?\s*([A-Za-z\s\-'\.]+?)(?:\n|$)`,
			`Customer[:\s]+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
			`Name[:\s]+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
			`Bill\s+To[:\s]+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		),
		Description: ci(
			`Description\s+of\s+the\s+Works[:\s]*\n(?:Quantity\s*Unit\s*)?\n?([\s\S]+?)(?:TOTAL\s+Purchase\s+Order\s+Price|Total\s+Purchase\s+Order\s+Value|TOTAL\s+PURCHASE\s+ORDER|$)`,
			`Description\s+of\s+Works[:\s]*\n(?:Quantity\s*Unit\s*)?\n?([\s\S]+?)(?:TOTAL\s+Purchase\s+Order\s+Price|Total\s+Purchase\s+Order\s+Value|TOTAL\s+PURCHASE\s+ORDER|$)`,
			`Description\s+of\s+the\s+Works[:\s]*\n([\s\S]+?)(?:TOTAL|Total|Supervisor\s+Details|$)`,
			`Description\s+of\s+Works[:\s]*\n([\s\S]+?)(?:TOTAL|Total|Supervisor\s+Details|$)`,
			`Description\s+of\s+Works[:\s]*(.+?)(?:Supervisor|Total|$)`,
			`Works\s+Description[:\s]*(.+?)(?:Supervisor|$)`,
			`Scope\s+of\s+Works[:\s]*(.+?)(?:Supervisor|$)`,
		),
		Dollar: ci(
			`TOTAL\s+Purchase\s+Order\s+Price\s*\(ex\s+GST\)\s*\$?\s*([\d,]+\.?\d*)`,
			`Total\s+Purchase\s+Order\s+Value\s*\(ex\s+GST\)\s*\$?\s*([\d,]+\.?\d*)`,
			`TOTAL\s+PURCHASE\s+ORDER\s+PRICE\s*\$?\s*([\d,]+\.?\d*)`,
			`Total\s+Purchase\s+Order\s+Value[:\s]*\$?\s*([\d,]+\.?\d*)`,
			`TOTAL\s+PURCHASE\s+ORDER[:\s]*\$?\s*([\d,]+\.?\d*)`,
			`Total[:\s]+\$?\s*([\d,]+\.?\d*)`,
			`\$\s*([\d,]+\.?\d*)`,
		),
		Address: ci(
			`Site\s+Address[:\s]*\n?([A-Za-z0-9\s\.,/#-]+?)(?:\n|$)`,
			`Property\s+Address[:\s]*\n?([A-Za-z0-9\s\.,/#-]+?)(?:\n|$)`,
			`Location[:\s]*\n?([A-Za-z0-9\s\.,/#-]+?)(?:\n|$)`,
			`Address[:\s]*\n?([A-Za-z0-9\s\.,/#-]+?)(?:\n|$)`,
		),
		SupervisorSection: regexp.MustCompile(`(?i)Supervisor\s+Details`),
	},
	KeyProfileBuild: {
		Key:     KeyProfileBuild,
		Name:    "Profile Build Group",
		Aliases: []string{"profile build", "profile build group", "pbg"},
		Signatures: []*regexp.Regexp{
			regexp.MustCompile(`(?i)profile\s+build\s+group`),
		},
		PO: ci(
			`WORK\s+ORDER:?\s*(PBG-\d+-\d+)`,
			`(PBG-\d+-\d+)`,
			`Order\s+Number[:\s#]+(PBG-\d+-\d+)`,
			`Contract\s+No[.:]?\s*(PBG-\d+-\d+)`,
		),
		Customer: ci(
			`SITE\s+CONTACT:\s*([A-Za-z\s\-'\.]+?)\n`,
			`Client[:\s]+\n?([A-Za-z\s&\-'\.]+?)(?:\n|Job)`,
			`Customer[:\s]+([A-Za-z\s\-'\.]+?)\n`,
			`SITE\s+CONTACT[:\s]+([A-Za-z\s]+?)\n`,
		),
		Description: ci(
			`PBG-\d+-\d+\s*\n([\s\S]+?)(?:Subtotal|Total|$)`,
			`NOTES[:\s]*\n([\s\S]+?)(?:All amounts|Total|Subtotal|$)`,
			`Scope\s+of\s+Works[:\s]*(.+?)(?:All amounts|Total|Subtotal|$)`,
			`PBG-\d+-\d+\s*\n([\s\S]+?)(?:All amounts|Total|$)`,
		),
		Dollar: ci(
			`Subtotal\s*\n\s*\$?([\d,]+\.?\d*)`,
			`Total\s+AUD\s*\$?\s*([\d,]+\.?\d*)`,
			`Total[:\s]+\$?\s*([\d,]+\.?\d*)`,
			`\$\s*([\d,]+\.?\d*)`,
		),
		SupervisorSection: regexp.MustCompile(`(?i)Supervisor[:\s]`),
	},
	KeyCampbell: {
		Key:     KeyCampbell,
		Name:    "Campbell Construction",
		Aliases: []string{"campbell", "campbell construction", "campbell build"},
		Signatures: []*regexp.Regexp{
			regexp.MustCompile(`CCC\d+-\d+`),
			regexp.MustCompile(`(?i)campbell\s+construction`),
		},
		PO: ci(
			`Contract\s+No[.:]?\s*(CCC\d+-\d+)`,
			`(CCC\d+-\d+)`,
			`CONTRACT\s+NO[.:]?\s*(CCC\d+-\d+)`,
			`Contract\s+Number[.:]?\s*(CCC\d+-\d+)`,
		),
		Customer: ci(
			`Customer:\s*\n([A-Za-z\s\-'\.]+?)\n`,
			`Site\s+Contact:\s*\n([A-Za-z\s\-'\.]+?)(?:\s*-|$)`,
			`Customer[:\s]+\n?([A-Za-z\s\-'\.]+?)(?:\n|Site)`,
			`Customer[:\s]+([A-Za-z\s\-'\.]+)`,
			`Client[:\s]+([A-Za-z\s\-'\.]+?)\n`,
			`Owner[:\s]+([A-Za-z\s\-'\.]+?)\n`,
		),
		Description: ci(
			`Scope\s+of\s+Work[:\s]*\n([\s\S]+?)(?:Totals|Page|Subtotal|$)`,
			`CCC\d+-\d+[\s\S]+?Description[:\s]*\n([\s\S]+?)(?:Totals|Page|Subtotal|$)`,
			`Description\s+of\s+Works[:\s]*(.+?)(?:Totals|Page|$)`,
		),
		Dollar: ci(
			`Subtotal\s*\n\s*\$?([\d,]+\.?\d*)`,
			`Subtotal\s+\$\s*([\d,]+\.?\d*)`,
			`Total\s*\$?\s*([\d,]+\.?\d*)`,
			`\$\s*([\d,]+\.?\d*)`,
		),
		SupervisorSection: regexp.MustCompile(`(?i)CONTRACTOR'S\s+REPRESENTATIVE|Supervisor`),
	},
	KeyRizon: {
		Key:     KeyRizon,
		Name:    "Rizon Group",
		Aliases: []string{"rizon", "rizon group"},
		Signatures: []*regexp.Regexp{
			regexp.MustCompile(`(?i)rizon\s+group`),
			regexp.MustCompile(`Client\s*/\s*Site\s+Details`),
		},
		PO: ci(
			`PURCHASE\s+ORDER\s+NO[:\s]*\n?(P?\d+)`,
			`(P\d{6})`,
			`ORDER\s+NUMBER[:\s]*(\d+/\d+/\d+)`,
			`(\d{6}/\d{3}/\d{2})`,
			`PO[:\s#]+(P?\d+)`,
		),
		Customer: ci(
			`Client\s*/\s*Site\s+Details.*?\n(?:[^\n]+\n){3,6}([A-Z][A-Za-z\s\-'\.]+?)\n`,
			`Client\s*/\s*Site\s+Details[:\s]*\n?([A-Za-z\s\-'\.]+?)(?:\n\d+|\n[A-Za-z]+\s+[A-Za-z]+,)`,
			`Client\s*/\s*Site\s+Details[:\s]*\n?([A-Za-z\s\-'\.]+?)(?:\n|\()`,
			`Customer[:\s]+([A-Za-z\s\-'\.]+?)\n`,
			`Site\s+Details[:\s]*\n?([A-Za-z\s\-'\.]+?)\n`,
		),
		Description: ci(
			`SCOPE\s+OF\s+WORKS[:\s]*\n([\s\S]+?)(?:Net Order|PURCHASE\s+ORDER\s+CONDITIONS|Total|$)`,
			`Scope\s+of\s+Works[:\s]*\n([\s\S]+?)(?:Net Order|Total|$)`,
		),
		Dollar: ci(
			`Total\s+Order[:\s]*\$?\s*([\d,]+\.?\d*)`,
			`Net\s+Order[:\s]*\$?\s*([\d,]+\.?\d*)`,
			`\$\s*([\d,]+\.?\d*)`,
		),
		SupervisorSection: regexp.MustCompile(`(?i)Supervisor[:\s]`),
	},
	KeyAustralianRestoration: {
		Key:     KeyAustralianRestoration,
		Name:    "Australian Restoration Company",
		Aliases: []string{"australian restoration", "arc", "restoration company"},
		Signatures: []*regexp.Regexp{
			regexp.MustCompile(`(?i)australian\s+restoration`),
			regexp.MustCompile(`PO\d+-[A-Z0-9]+-\d+`),
		},
		PO: ci(
			`Order\s+Number[:\s]*\n?(PO\d+-[A-Z0-9]+-\d+)`,
			`(PO\d+-[A-Z0-9]+-\d+)`,
			`Purchase\s+Order[:\s#]+(PO\d+-[A-Z0-9]+-\d+)`,
		),
		Customer: ci(
			`Customer\s+Details[:\s]*\n?([A-Za-z\s\-'\.]+?)(?:\n|Site)`,
			`Customer\s+Details[:\s]*([A-Za-z\s\-'\.]+)`,
			`Customer[:\s]+([A-Za-z\s\-'\.]+?)\n`,
			`Client[:\s]+([A-Za-z\s\-'\.]+?)\n`,
		),
		Description: ci(
			`Flooring\s+Contractor\s+Material\n([\s\S]+?)(?:All amounts|Preliminaries|Total|$)`,
			`Scope\s+of\s+Works[:\s]*\n([\s\S]+?)(?:All amounts|Total|$)`,
		),
		Dollar: ci(
			`Sub\s+Total\s+\$\s*([\d,]+\.?\d*)`,
			`Total\s+AUD\s*\$?\s*([\d,]+\.?\d*)`,
			`\$\s*([\d,]+\.?\d*)`,
		),
		SupervisorSection: regexp.MustCompile(`(?i)Project\s+Manager[:\s]|Case\s+Manager[:\s]`),
	},
	KeyTownsend: {
		Key:     KeyTownsend,
		Name:    "Townsend Building Services",
		Aliases: []string{"townsend", "townsend building", "tbs", "townsend services"},
		Signatures: []*regexp.Regexp{
			regexp.MustCompile(`(?i)townsend\s+building`),
			regexp.MustCompile(`TBS-\d+`),
		},
		PO: ci(
			`Order\s+Number\s*\n\s*([A-Z0-9]+)`,
			`Purchase\s+Order[:\s#]+(TBS-\d+)`,
			`(TBS-\d+)`,
			`Order\s+Number[:\s]*(TBS-\d+|PO\d+)`,
			`WO[:\s#]+(\d+)`,
			`Work\s+Order[:\s#]+(\d+)`,
		),
		Customer: ci(
			`Site\s+Contact\s+Name\s*\n([A-Za-z\s\(\)\-'\.]+?)\n`,
			`Site\s+Contact\s+name\s*=?\s*([A-Za-z\s\-'\.]+?)(?:\n|Subtotal)`,
			`Contact\s+Name\s*\n\s*([A-Za-z\s\-'\.]+?)\n`,
			`Attention[:\s]+([A-Za-z\s\-'\.]+?)(?:\n|Email)`,
			`Customer[:\s]+([A-Za-z\s\-'\.]+?)\n`,
			`Client[:\s]+([A-Za-z\s\-'\.]+?)\n`,
		),
		Description: ci(
			`(?:Flooring|Floor\s+Preperation)[^<]*?([\s\S]+?)(?:Total|$)`,
			`Additional\s+Notes/Instructions[:\s]*\n([\s\S]+?)(?:Flooring|Floor|Start|$)`,
			`Scope\s+of\s+Works[:\s]*\n([\s\S]+?)(?:Total|ABN|Page|$)`,
			`Work\s+Description[:\s]*\n([\s\S]+?)(?:Total|ABN|Page|$)`,
			`Description[:\s]*\n([\s\S]+?)(?:Total|ABN|Page|$)`,
		),
		Dollar: ci(
			`Subtotal\s*\n\s*\$?([\d,]+\.?\d*)`,
			`Subtotal\s*=?\s*\$?\s*([\d,]+\.?\d*)`,
			`Total\s+Inc\.?\s+GST[:\s]*\$?\s*([\d,]+\.?\d*)`,
			`Total[:\s]+\$?\s*([\d,]+\.?\d*)`,
			`\$\s*([\d,]+\.?\d*)`,
		),
		SupervisorSection: regexp.MustCompile(`(?i)Project\s+Manager[:\s]|Supervisor[:\s]|Manager[:\s]`),
	},
	KeyOneSolutions: {
		Key:     KeyOneSolutions,
		Name:    "One Solutions",
		Aliases: []string{"one solutions", "a to z flooring", "a to z flooring solutions"},
		Signatures: []*regexp.Regexp{
			regexp.MustCompile(`(?i)one\s+solutions`),
			regexp.MustCompile(`(?i)a\s+to\s+z\s+flooring`),
		},
		PO: ci(
			`Purchase\s+Order\s+Number[:\s]+([A-Z0-9-]+)`,
			`Order\s+Number[:\s]+([A-Z0-9-]+)`,
			`PO[:\s]+([A-Z0-9-]+)`,
			`Work\s+Order[:\s]+([A-Z0-9-]+)`,
		),
		Customer: ci(
			`SITE\s+CONTACT:\s*([A-Za-z\s\-'\.]+?)\n`,
			`Site\s+Contact\s+Name[:\s]+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
			`Customer[:\s]+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
			`Client[:\s]+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
			`Contact\s+Name[:\s]+([A-Za-z\s\-'\.]+?)(?:\n|$)`,
		),
		Description: ci(
			`Floor\s+Covers[\s\n]+([\s\S]+?)(?:Totals|Total|$)`,
			`Scope\s+of\s+Works[:\s]+([\s\S]+?)(?:Totals|Total|$)`,
			`Description\s+of\s+Works[:\s]*(.+?)(?:Totals|Total|$)`,
		),
		Dollar: ci(
			`Subtotal[\s:]*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`,
			`Total[\s:]*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`,
			`\$\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`,
		),
		SupervisorSection: regexp.MustCompile(`(?i)One\s+Solution\s+Representative[:\s]|Supervisor[:\s]`),
		CommencementDate: ci(
			`Works\s+to\s+Commence[\s\n]+([^\n]+)`,
			`Start\s+Date[\s\n]+([^\n]+)`,
		),
		CompletionDate: ci(
			`Works\s+to\s+be\s+Completed\s+By[\s\n]+([^\n]+)`,
			`Completion\s+Date[\s\n]+([^\n]+)`,
		),
	},
	KeyJohnsLyng: {
		Key:     KeyJohnsLyng,
		Name:    "Johns Lyng Group",
		Aliases: []string{"johns lyng", "johns lyng group", "jl group"},
		Signatures: []*regexp.Regexp{
			regexp.MustCompile(`(?i)johns\s+lyng`),
		},
		PO: ci(
			`Purchase\s+Order[:\s#]+([A-Z0-9-]+)`,
			`PO[:\s#]+([A-Z0-9-]+)`,
			`Order\s+Number[:\s#]+([A-Z0-9-]+)`,
			`Work\s+Order[:\s#]+([A-Z0-9-]+)`,
			`JL[:\s#]+([A-Z0-9-]+)`,
		),
		Customer: ci(
			`Customer[:\s]+([A-Za-z\s]+?)\n`,
			`Client[:\s]+([A-Za-z\s]+?)\n`,
			`Site\s+Contact[:\s]+([A-Za-z\s]+?)\n`,
			`Contact\s+Name[:\s]+([A-Za-z\s]+?)\n`,
			`Name[:\s]+([A-Za-z\s]+?)\n`,
		),
		Description: ci(
			`Scope\s+of\s+Works[:\s]*(.+?)(?:Supervisor|Total|$)`,
			`Description\s+of\s+Works[:\s]*(.+?)(?:Supervisor|Total|$)`,
			`Works\s+Description[:\s]*(.+?)(?:Supervisor|Total|$)`,
			`Project\s+Description[:\s]*(.+?)(?:Supervisor|Total|$)`,
		),
		Dollar: ci(
			`Total[:\s]+\$?\s*([\d,]+\.?\d*)`,
			`Subtotal[:\s]+\$?\s*([\d,]+\.?\d*)`,
			`\$\s*([\d,]+\.?\d*)`,
		),
		SupervisorSection: regexp.MustCompile(`(?i)Supervisor|Project\s+Manager|Site\s+Manager`),
	},
	KeyGeneric: {
		Key:  KeyGeneric,
		Name: "Generic Template",
		PO: ci(
			`P\.O\.\s*No:?\s*([A-Za-z0-9-]+)`,
			`PO[:\s#]+([A-Za-z0-9-]+)`,
			`Purchase\s+Order[:\s#]+([A-Za-z0-9-]+)`,
			`Order\s+Number[:\s#]+([A-Za-z0-9-]+)`,
			`CONTRACT\s+NO[.:]?\s*([A-Za-z0-9-]+)`,
			`Contract\s+Number[.:]?\s*([A-Za-z0-9-]+)`,
			`WORK\s+ORDER[:\s]+([A-Za-z0-9-]+)`,
			`JOB\s+NUMBER[:\s]+([A-Za-z0-9-]+)`,
		),
		Customer: ci(
			`Customer[:\s]+([A-Za-z\s]+?)\n`,
			`Client[:\s]+([A-Za-z\s]+?)\n`,
			`Name[:\s]+([A-Za-z\s]+?)\n`,
			`Bill\s+To[:\s]+([A-Za-z\s]+?)\n`,
		),
		Description: ci(
			`Description\s+of\s+Works[:\s]*(.+?)(?:Supervisor|Total|$)`,
			`Scope\s+of\s+Works[:\s]*(.+?)(?:Supervisor|Total|$)`,
			`Works\s+Description[:\s]*(.+?)(?:Supervisor|Total|$)`,
		),
		Dollar: ci(
			`\$\s*([\d,]+\.?\d*)`,
			`Total[:\s]+\$?\s*([\d,]+\.?\d*)`,
		),
		SupervisorSection: regexp.MustCompile(`(?i)Supervisor|Contractor[\s']*s?\s+Representative`),
	},
}

// detectionOrder is the fixed precedence for content-signature detection.
// Profile Build is checked before Ambrose on purpose: Ambrose's numeric
// PO signature is loose enough to fire on other builders' documents.
var detectionOrder = []Key{
	KeyProfileBuild,
	KeyAmbrose,
	KeyCampbell,
	KeyRizon,
	KeyAustralianRestoration,
	KeyTownsend,
	KeyOneSolutions,
	KeyJohnsLyng,
}

func init() {
	for key, tpl := range registry {
		if err := tpl.validate(); err != nil {
			panic(fmt.Sprintf("template %s: %v", key, err))
		}
	}
}

func (t *Template) validate() error {
	if t.Name == "" {
		return fmt.Errorf("missing display name")
	}
	if len(t.PO) == 0 {
		return fmt.Errorf("no PO number patterns")
	}
	if len(t.Customer) == 0 {
		return fmt.Errorf("no customer patterns")
	}
	return nil
}

// Lookup returns the template registered under key, or nil.
func Lookup(key Key) *Template {
	return registry[key]
}

// Generic returns the fallback template.
func Generic() *Template {
	return registry[KeyGeneric]
}

// Keys returns every registered template key.
func Keys() []Key {
	keys := make([]Key, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	return keys
}
