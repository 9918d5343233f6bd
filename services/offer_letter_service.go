package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/chalkroute/teacher_match/configs"
	"github.com/chalkroute/teacher_match/database"
	"github.com/chalkroute/teacher_match/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateOfferLetter renders, uploads and records the offer letter for an
// application that just reached hired. Safe to call from a goroutine; every
// failure is logged and leaves the application untouched.
func GenerateOfferLetter(applicationID uuid.UUID) {
	var application models.Application
	err := database.DB.
		Preload("Job").Preload("Job.School").
		Preload("Teacher").Preload("Teacher.User").
		First(&application, "id = ?", applicationID).Error
	if err != nil {
		log.Printf("🔥 Cannot load application %s for offer letter: %v", applicationID, err)
		return
	}

	if application.Status != models.ApplicationHired {
		return
	}

	var existing models.OfferLetter
	if err := database.DB.Where("application_id = ?", applicationID).First(&existing).Error; err == nil {
		return
	}

	htmlData, err := renderOfferLetterHTML(application)
	if err != nil {
		log.Printf("🔥 Failed to render offer letter HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate offer letter PDF: %v", err)
		return
	}

	letterURL, err := uploadLetterToCloudinary(pdfBytes, application.TeacherID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload offer letter: %v", err)
		return
	}

	letter := models.OfferLetter{
		ApplicationID: applicationID,
		LetterURL:     letterURL,
		IssuedAt:      time.Now(),
	}
	if err := database.DB.Create(&letter).Error; err != nil {
		log.Printf("🔥 Failed to record offer letter for application %s: %v", applicationID, err)
		return
	}
	log.Printf("✅ Generated offer letter for application %s.", applicationID)
}

func renderOfferLetterHTML(application models.Application) (string, error) {
	tmpl, err := template.ParseFiles("templates/offer_letter.html")
	if err != nil {
		return "", err
	}

	data := struct {
		TeacherName string
		SchoolName  string
		JobTitle    string
		Subject     string
		GradeLevel  string
		IssuedDate  string
	}{
		TeacherName: application.Teacher.User.FullName,
		SchoolName:  application.Job.School.SchoolName,
		JobTitle:    application.Job.Title,
		Subject:     application.Job.Subject,
		GradeLevel:  application.Job.GradeLevel,
		IssuedDate:  time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadLetterToCloudinary(fileBytes []byte, teacherID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("offer_letters/%s_%s", teacherID, uuid.New().String()),
		Folder:       "chalkroute_offer_letters",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
