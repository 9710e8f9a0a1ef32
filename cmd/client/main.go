package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"podcast-summarizer/internal/domain/dto"
	"podcast-summarizer/internal/domain/entities"
	"podcast-summarizer/internal/domain/mapper"
	consts "podcast-summarizer/pkg/constants"
	"podcast-summarizer/pkg/helper"

	"github.com/gofiber/fiber/v2"
)

const requestTimeout = 30 * time.Minute

func main() {
	server := flag.String("server", "http://localhost:3000", "Server base URL")
	filePath := flag.String("file", "", "Yüklenecek dosyanın yolu")
	title := flag.String("title", "", "Episode title (defaults to the file name)")
	description := flag.String("description", "", "Episode description")
	duration := flag.String("duration", "", "Duration in seconds")
	summarize := flag.Bool("summarize", false, "Request a summary after the upload")
	transcribe := flag.Bool("transcribe", false, "Request a transcript after the upload")
	summaryType := flag.String("summary-type", consts.DefaultSummaryType, "comprehensive, brief or key_points")
	flag.Parse()

	if strings.TrimSpace(*filePath) == "" {
		log.Fatal("-file gerekli")
	}
	base := strings.TrimRight(*server, "/")

	content, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Dosya okunamadı: %v\n", err)
	}
	filename := filepath.Base(*filePath)

	fmt.Printf("Sunucu: %s\n", base)
	fmt.Printf("Dosya: %s (%d bytes)\n", filename, len(content))

	record, err := upload(base, filename, content, map[string]string{
		"title":           *title,
		"description":     *description,
		"durationSeconds": *duration,
	})
	if err != nil {
		log.Fatalf("Upload başarısız: %v\n", err)
	}
	pretty, _ := json.MarshalIndent(record, "", "  ")
	fmt.Printf("Upload tamamlandı:\n%s\n", pretty)

	if *transcribe {
		fmt.Println("Transkript isteniyor...")
		transcript, err := requestTranscript(base, mapper.MediaToTranscribeRequest(record))
		if err != nil {
			log.Fatalf("Transkript alınamadı: %v\n", err)
		}
		fmt.Printf("Transkript:\n%s\n", transcript.Transcript)
	}

	if !*summarize {
		return
	}

	fmt.Println("Özet isteniyor...")
	summary, err := requestSummary(base, mapper.MediaToSummarizeRequest(record, *summaryType))
	if err != nil {
		log.Fatalf("Özet alınamadı: %v\n", err)
	}
	fmt.Printf("Özet (%s):\n%s\n", summary.SummaryType, summary.Summary)
	for _, point := range summary.KeyPoints {
		fmt.Printf("  - %s\n", point)
	}
}

func upload(base, filename string, content []byte, fields map[string]string) (*entities.MediaRecord, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	// CreateFormFile would send application/octet-stream, which the server rejects.
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, consts.UploadFormField, filename))
	header.Set("Content-Type", helper.GetMimeTypeFromExtension(filename))
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("form dosyası oluşturulamadı: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("form dosyasına yazılamadı: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	code, respBody, errs := fiber.Post(base + "/upload").
		ContentType(writer.FormDataContentType()).
		Body(body.Bytes()).
		Timeout(requestTimeout).
		Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if code != fiber.StatusCreated {
		return nil, describe(code, respBody)
	}

	var record entities.MediaRecord
	if err := json.Unmarshal(respBody, &record); err != nil {
		return nil, fmt.Errorf("yanıt çözümlenemedi: %w", err)
	}
	return &record, nil
}

func requestSummary(base string, req *dto.SummarizeRequestDTO) (*dto.SummaryResponse, error) {
	code, respBody, errs := fiber.Post(base + "/summarize").
		JSON(req).
		Timeout(requestTimeout).
		Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if code != fiber.StatusOK {
		return nil, describe(code, respBody)
	}

	var summary dto.SummaryResponse
	if err := json.Unmarshal(respBody, &summary); err != nil {
		return nil, fmt.Errorf("yanıt çözümlenemedi: %w", err)
	}
	return &summary, nil
}

func requestTranscript(base string, req *dto.TranscribeRequestDTO) (*dto.TranscribeResponse, error) {
	code, respBody, errs := fiber.Post(base + "/transcribe").
		JSON(req).
		Timeout(requestTimeout).
		Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if code != fiber.StatusOK {
		return nil, describe(code, respBody)
	}

	var transcript dto.TranscribeResponse
	if err := json.Unmarshal(respBody, &transcript); err != nil {
		return nil, fmt.Errorf("yanıt çözümlenemedi: %w", err)
	}
	return &transcript, nil
}

func describe(code int, body []byte) error {
	var payload dto.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg := fmt.Sprintf("HTTP %d %s: %s", code, payload.Error, payload.Message)
		for _, d := range payload.Details {
			msg += fmt.Sprintf("\n  %s: %s", d.Path, d.Message)
		}
		return errors.New(msg)
	}
	return fmt.Errorf("HTTP %d %s", code, strings.TrimSpace(string(body)))
}
