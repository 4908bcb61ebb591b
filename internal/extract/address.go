package extract

import (
	"regexp"
	"strings"
)

// Australian address shapes, most reliable first.
var addressLayouts = []*regexp.Regexp{
	// "22 FAIRY WREN CIRCUIT, Dakabin, QLD 4503"
	regexp.MustCompile(`^(.*?),\s*([A-Za-z\s]+),\s*([A-Z]{2,3})\s+(\d{4})$`),
	// "151 Warriewood Street Chandler QLD 4155"
	regexp.MustCompile(`^(.*?)\s+([A-Za-z\s]+)\s+([A-Z]{2,3})\s+(\d{4})$`),
	// "Unit 1/22 FAIRY WREN CIRCUIT, Dakabin QLD 4503"
	regexp.MustCompile(`^(.*?),\s*([A-Za-z\s]+)\s+([A-Z]{2,3})\s+(\d{4})$`),
}

var trailingCommaRe = regexp.MustCompile(`[,\s]+$`)

// parseAddress splits a one-line Australian address into components and
// mirrors them into the ship-to fields when those are still empty.
func parseAddress(addr string, rec *Record) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}

	rec.Address1 = addr
	rec.Address2 = ""
	rec.City = ""
	rec.State = ""
	rec.PostCode = ""

	for _, re := range addressLayouts {
		m := re.FindStringSubmatch(addr)
		if m == nil {
			continue
		}
		street := trailingCommaRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
		if i := strings.Index(street, ","); i >= 0 {
			rec.Address1 = strings.TrimSpace(street[:i])
			rec.Address2 = strings.TrimSpace(street[i+1:])
		} else {
			rec.Address1 = street
			rec.Address2 = ""
		}
		rec.City = strings.TrimSpace(m[2])
		rec.State = strings.TrimSpace(m[3])
		rec.PostCode = strings.TrimSpace(m[4])
		break
	}

	fillShipToAddress(rec)
}

// Ambrose address shapes. The first layout anchors on a street-type
// word so "4 Pampas Court Capalaba QLD 4157" splits after "Court".
var ambroseAddressLayouts = []*regexp.Regexp{
	regexp.MustCompile(`^(\d+(?:/\d+)?\s+[A-Za-z\s]+?\s+(?:Court|Street|Road|Avenue|Drive|Circuit|Place|Lane|Way|Crescent)\b)\s+([A-Za-z][A-Za-z\s]*?)\s+([A-Z]{2,3})\s+(\d{4})$`),
	regexp.MustCompile(`^(.*?),\s*([A-Za-z\s]+),\s*([A-Z]{2,3})\s+(\d{4})$`),
	regexp.MustCompile(`^(.*?),\s*([A-Za-z\s]+?)\s+([A-Z]{2,3})\s+(\d{4})$`),
	regexp.MustCompile(`^(\d+/\d+\s+[A-Za-z\s]+?)\s+([A-Za-z\s]+?)\s+([A-Z]{2,3})\s+(\d{4})$`),
	regexp.MustCompile(`^(\d+(?:/\d+)?\s+[A-Za-z\s]+?)\s+([A-Za-z]+(?:\s+[A-Za-z]+)*?)\s+([A-Z]{2,3})\s+(\d{4})$`),
}

// streetTypeWords are tokens that belong to a street name, not a suburb.
var streetTypeWords = map[string]bool{
	"street": true, "st": true, "road": true, "rd": true,
	"avenue": true, "ave": true, "drive": true, "dr": true,
	"circuit": true, "cct": true, "place": true, "pl": true,
	"court": true, "ct": true, "lane": true, "ln": true,
	"way": true, "crescent": true, "cres": true,
}

// parseAmbroseAddress handles Ambrose's habit of letting the street
// type leak into the suburb slot. When the parsed city still contains a
// street-type word, the street is extended and the remaining words
// become the suburb.
func parseAmbroseAddress(addr string, rec *Record) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}

	rec.Address1 = addr
	rec.Address2 = ""
	rec.City = ""
	rec.State = ""
	rec.PostCode = ""

	for _, re := range ambroseAddressLayouts {
		m := re.FindStringSubmatch(addr)
		if m == nil {
			continue
		}
		street := strings.TrimSpace(m[1])
		city := strings.TrimSpace(m[2])

		cityWords := strings.Fields(strings.ToLower(city))
		hasStreetWord := false
		for _, w := range cityWords {
			if streetTypeWords[w] {
				hasStreetWord = true
				break
			}
		}

		if hasStreetWord && len(cityWords) > 1 {
			var streetExt, actualCity []string
			for _, w := range strings.Fields(city) {
				if streetTypeWords[strings.ToLower(w)] {
					streetExt = append(streetExt, w)
				} else if len(streetExt) > 0 {
					actualCity = append(actualCity, w)
				} else {
					streetExt = append(streetExt, w)
				}
			}
			if len(actualCity) > 0 {
				rec.Address1 = strings.TrimSpace(street + " " + strings.Join(streetExt, " "))
				rec.City = strings.Join(actualCity, " ")
			} else {
				rec.Address1 = street
				rec.City = city
			}
		} else {
			rec.Address1 = street
			rec.City = city
		}

		rec.Address2 = ""
		rec.State = strings.TrimSpace(m[3])
		rec.PostCode = strings.TrimSpace(m[4])
		break
	}

	fillShipToAddress(rec)
}

// fillShipToAddress copies site address components into the ship-to
// slots that are still empty.
func fillShipToAddress(rec *Record) {
	if rec.ShipToAddress1 == "" {
		rec.ShipToAddress1 = rec.Address1
	}
	if rec.ShipToAddress2 == "" {
		rec.ShipToAddress2 = rec.Address2
	}
	if rec.ShipToCity == "" {
		rec.ShipToCity = rec.City
	}
	if rec.ShipToState == "" {
		rec.ShipToState = rec.State
	}
	if rec.ShipToPostCode == "" {
		rec.ShipToPostCode = rec.PostCode
	}
}
