package placeholder

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"craneworks/internal/checklist"
	"craneworks/internal/labels"
	"craneworks/internal/storage"
)

const (
	dateLayout     = "2006/01/02"
	dateTimeLayout = "2006/01/02 15:04"
)

var yen = message.NewPrinter(language.Japanese)

// Build flattens one fully joined work record into the placeholder map used
// by the document renderers. Missing optional fields become empty strings so
// a template never prints a literal "null". The checklist part always carries
// every key of the schema, whatever the stored blob contains.
func Build(rec *storage.WorkRecord) map[string]string {
	p := map[string]string{
		"workType":            rec.WorkType,
		"workTypeLabel":       labels.WorkType(rec.WorkType),
		"inspectionDate":      rec.InspectionDate.Format(dateLayout),
		"inspectionDateTime":  rec.InspectionDate.Format(dateTimeLayout),
		"findings":            strVal(rec.Findings),
		"documentNo":          rec.DocumentNo,
		"installationFactory": strVal(rec.InstallationFactory),
	}

	eq := rec.Equipment
	if eq == nil {
		eq = &storage.Equipment{}
	}
	p["equipmentName"] = eq.Name
	p["equipmentModel"] = strVal(eq.Model)
	p["equipmentSerialNo"] = strVal(eq.SerialNo)
	p["equipmentLocation"] = strVal(eq.Location)

	co := eq.Company
	if co == nil {
		co = &storage.Company{}
	}
	p["companyName"] = co.Name
	p["companyAddress"] = strVal(co.Address)
	p["companyPhone"] = strVal(co.Phone)

	pr := eq.Project
	if pr == nil {
		pr = &storage.Project{}
	}
	p["projectName"] = pr.Name
	p["projectStatus"] = pr.Status
	p["projectStatusLabel"] = labels.ProjectStatus(pr.Status)
	if pr.Amount != nil {
		p["projectAmount"] = strconv.FormatInt(*pr.Amount, 10)
		p["projectAmountFormatted"] = yen.Sprintf("¥%d", *pr.Amount)
	} else {
		p["projectAmount"] = ""
		p["projectAmountFormatted"] = ""
	}
	if pr.StartDate != nil {
		p["projectStartDate"] = pr.StartDate.Format(dateLayout)
	} else {
		p["projectStartDate"] = ""
	}
	if pr.EndDate != nil {
		p["projectEndDate"] = pr.EndDate.Format(dateLayout)
	} else {
		p["projectEndDate"] = ""
	}

	user := rec.User
	if user == nil {
		user = &storage.User{}
	}
	p["userName"] = user.FullName
	p["userEmail"] = strVal(user.Email)
	p["userPhone"] = strVal(user.Phone)

	data := checklist.Parse(rec.ChecklistJSON)
	for _, section := range checklist.Schema {
		for _, category := range section.Categories {
			for _, item := range category.Items {
				key := section.ID + "_" + category.ID + "_" + item.ID
				p[key] = data.Get(section.ID, category.ID, item.ID)

				defect := data.Get(section.ID, category.ID, item.ID+checklist.DefectSuffix)
				if defect != "" {
					p[key+"_defect_label"] = labels.Defect(defect)
				} else {
					p[key+"_defect_label"] = ""
				}
			}
		}
	}

	return p
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
