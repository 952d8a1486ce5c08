package reports

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"trekhub/db"
	"trekhub/models"
	"trekhub/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/reports/emergency-card/:memberid
// A printable card carrying the member's emergency details plus a QR
// payload of the same data for offline scanning on the trail.
func EmergencyCard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	memberID := ps.ByName("memberid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var member models.TrekMember
	if err := db.TrekMembersCollection.FindOne(ctx, bson.M{"memberid": memberID}).Decode(&member); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Member not found")
		return
	}

	contacts, _ := utils.FindAndDecode[models.EmergencyContact](ctx, db.EmergencyContactsCollection,
		bson.M{"memberid": memberID})

	qrPayload := fmt.Sprintf("%s|%s|%s|%s|%s",
		member.Name, member.BloodGroup, member.EmergencyContact, member.EmergencyPhone, member.Phone)
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Trek Emergency Card")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Name: %s", member.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Blood group: %s", member.BloodGroup))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Phone: %s", member.Phone))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Emergency contact: %s (%s)", member.EmergencyContact, member.EmergencyPhone))
	pdf.Ln(12)

	if len(contacts) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 10, "Additional contacts")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, c := range contacts {
			pdf.Cell(0, 8, fmt.Sprintf("%s: %s (%s)", c.Kind, c.Name, c.Phone))
			pdf.Ln(6)
		}
		pdf.Ln(6)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=emergency-card-"+memberID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GET /api/reports/packing-list
// The full shared packing list as a printable PDF, grouped by category.
func PackingList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := utils.FindAndDecode[models.PackingItem](ctx, db.PackingItemsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching packing items")
		return
	}

	byCategory := make(map[string][]models.PackingItem)
	categories := []string{}
	for _, item := range items {
		if _, seen := byCategory[item.Category]; !seen {
			categories = append(categories, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Trek Packing List")
	pdf.Ln(12)

	for _, category := range categories {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 10, category)
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, item := range byCategory[category] {
			pdf.Cell(0, 8, fmt.Sprintf("[ ] %s x%d (%.0f g)", item.Name, item.Count, item.WeightGrams))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=packing-list.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
