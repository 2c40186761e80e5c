package fristen

import (
	"fmt"
	"time"

	"github.com/hochfrequenz/fristenkalender/core/model"
)

type descKey struct {
	label string
	typ   model.FristenType
}

// descriptions holds German templates; %s is replaced by "<Monat> <Jahr>".
// Entries with an empty type are the generic texts of the full calendar.
var descriptions = map[descKey]string{
	{"5WT", ""}:   "5. Werktag im %s",
	{"10WT", ""}:  "10. Werktag im %s",
	{"12WT", ""}:  "12. Werktag im %s",
	{"14WT", ""}:  "14. Werktag im %s",
	{"16WT", ""}:  "16. Werktag im %s",
	{"17WT", ""}:  "17. Werktag im %s",
	{"18WT", ""}:  "18. Werktag im %s",
	{"20WT", ""}:  "20. Werktag im %s",
	{"21WT", ""}:  "21. Werktag im %s",
	{"26WT", ""}:  "26. Werktag im %s",
	{"30WT", ""}:  "30. Werktag im %s",
	{"42WT", ""}:  "42. Werktag ab Beginn von %s",
	{"LWT", ""}:   "Letzter Werktag im %s",
	{"3LWT", ""}:  "3 Werktage vor Ende von %s",

	{"3LWT", model.FristenTypeGPKE}:    "GPKE: Letzter Termin für die Anmeldung zur Netznutzung zum Beginn des Folgemonats von %s",
	{"3LWT", model.FristenTypeGeLiGas}: "GeLi Gas: Letzter Termin für die Anmeldung zur Lieferaufnahme zum Folgemonat von %s",
	{"LWT", model.FristenTypeGeLiGas}:  "GeLi Gas: Ende der Belieferung zum Monatsende %s",

	{"10WT", model.FristenTypeMaBiS}: "MaBiS: Versand der vorläufigen Bilanzkreissummenzeitreihen für %s",
	{"12WT", model.FristenTypeMaBiS}: "MaBiS: Prüfmitteilungen zu den Bilanzkreissummenzeitreihen für %s",
	{"16WT", model.FristenTypeMaBiS}: "MaBiS: Ende des Lieferantenclearings für %s",
	{"18WT", model.FristenTypeMaBiS}: "MaBiS: Versand der Netzzeitreihen an den Bilanzkoordinator für %s",
	{"20WT", model.FristenTypeMaBiS}: "MaBiS: Versand der Bilanzkreisabrechnung für %s",
	{"26WT", model.FristenTypeMaBiS}: "MaBiS: Ende der Korrekturphase im Datenaustausch für %s",
	{"30WT", model.FristenTypeMaBiS}: "MaBiS: Abschluss des Datenclearings für %s",
	{"42WT", model.FristenTypeMaBiS}: "MaBiS: Versand der Korrekturbilanzkreisabrechnung für %s",

	{"5WT", model.FristenTypeKoV}:  "KoV: Übermittlung der Allokationsdaten für %s",
	{"12WT", model.FristenTypeKoV}: "KoV: Versand der Mengen zur Mehr-/Mindermengenabrechnung für %s",
	{"14WT", model.FristenTypeKoV}: "KoV: Versand der Bilanzkreisabrechnung Gas für %s",
	{"17WT", model.FristenTypeKoV}: "KoV: Ende der Korrekturfrist Allokation für %s",
	{"21WT", model.FristenTypeKoV}: "KoV: Versand der Mehr-/Mindermengenabrechnung für %s",

	{"5WT", model.FristenTypeWiM}: "WiM: Versand der Messwerte zum Monatsende an den Netzbetreiber für %s",
	{"LWT", model.FristenTypeWiM}: "WiM: Frist für den Gerätewechsel zum Monatsende %s",
}

// Describe returns the description of label for the month of date. An empty
// typ selects the generic text; otherwise the label must be mapped to typ.
func Describe(date time.Time, label string, typ model.FristenType) (string, error) {
	return describe(date.Year(), date.Month(), label, typ)
}

// DescribeFrist describes f for the month it was counted in, which differs
// from the month of its date when a mismatch was recorded.
func DescribeFrist(f model.Frist) (string, error) {
	year, month := f.Date.Year(), f.Date.Month()
	if !f.Mismatch.IsZero() {
		ref := f.Mismatch.ReferenceMonth
		if f.Mismatch.WorkingDays > 0 && ref > month {
			year--
		} else if f.Mismatch.WorkingDays < 0 && ref < month {
			year++
		}
		month = ref
	}
	return describe(year, month, f.Label, f.Type)
}

func describe(year int, month time.Month, label string, typ model.FristenType) (string, error) {
	if _, err := ParseLabel(label); err != nil {
		return "", err
	}
	if typ != "" && !knownType(typ) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFristenType, string(typ))
	}
	tmpl, ok := descriptions[descKey{label, typ}]
	if !ok {
		return "", &DescriptionError{Label: label, Type: typ}
	}
	return fmt.Sprintf(tmpl, fmt.Sprintf("%s %d", model.MonthName(month), year)), nil
}

func knownType(t model.FristenType) bool {
	for _, k := range model.FristenTypes {
		if k == t {
			return true
		}
	}
	return false
}
