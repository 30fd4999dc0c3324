package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// MaxAssetSize : plafond par fichier (image, ZIP ou PDF).
const MaxAssetSize = 50 << 20 // 50MB

// Uploader abstrait le stockage d'objets : MinIO en production, un
// fake en mémoire dans les tests.
type Uploader interface {
	// Upload pousse l'objet et renvoie son URL durable.
	Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error)
	// Remove supprime un objet (compensation d'un upload partiel).
	Remove(ctx context.Context, objectName string) error
}

type MinioUploader struct {
	Client   *minio.Client
	Bucket   string
	Endpoint string
	Secure   bool
}

func (m *MinioUploader) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := m.Client.PutObject(ctx, m.Bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if m.Secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.Endpoint, m.Bucket, objectName), nil
}

func (m *MinioUploader) Remove(ctx context.Context, objectName string) error {
	return m.Client.RemoveObject(ctx, m.Bucket, objectName, minio.RemoveObjectOptions{})
}

// BundleURLs : les trois URLs qui composent un projet publié.
type BundleURLs struct {
	Image         string
	ProjectFiles  string
	Documentation string
}

// UploadBundle pousse les trois fichiers d'un produit en parallèle.
// Si un upload échoue, l'erreur nomme le fichier fautif et les objets
// déjà poussés sont supprimés (au mieux — un échec de nettoyage est
// seulement loggé).
func UploadBundle(ctx context.Context, up Uploader, image, projectFiles, documentation *multipart.FileHeader) (BundleURLs, error) {
	if err := checkBundleTypes(image, projectFiles, documentation); err != nil {
		return BundleURLs{}, err
	}

	id := uuid.NewString()
	slots := []struct {
		label  string
		file   *multipart.FileHeader
		object string
		dest   *string
	}{
		{"image", image, "product_images/img_" + id + imageExt(image), nil},
		{"projectFiles", projectFiles, "project_files/project_" + id + ".zip", nil},
		{"documentation", documentation, "documentation/doc_" + id + ".pdf", nil},
	}

	var urls BundleURLs
	slots[0].dest = &urls.Image
	slots[1].dest = &urls.ProjectFiles
	slots[2].dest = &urls.Documentation

	var mu sync.Mutex
	uploaded := make(map[string]string) // label → objet poussé

	g, gctx := errgroup.WithContext(ctx)
	for _, slot := range slots {
		g.Go(func() error {
			f, err := slot.file.Open()
			if err != nil {
				return fmt.Errorf("lecture du fichier %s: %w", slot.label, err)
			}
			defer f.Close()

			url, err := up.Upload(gctx, slot.object, f, slot.file.Size, slot.file.Header.Get("Content-Type"))
			if err != nil {
				return fmt.Errorf("échec upload %s: %w", slot.label, err)
			}

			mu.Lock()
			*slot.dest = url
			uploaded[slot.label] = slot.object
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for label, object := range uploaded {
			if rmErr := up.Remove(ctx, object); rmErr != nil {
				log.Printf("⚠️ Nettoyage impossible de l'objet %s (%s): %v", object, label, rmErr)
			}
		}
		return BundleURLs{}, err
	}

	return urls, nil
}

// checkBundleTypes rejoue le filtre multer de l'ancien backend :
// image/* pour l'aperçu, ZIP pour le code, PDF pour la doc.
func checkBundleTypes(image, projectFiles, documentation *multipart.FileHeader) error {
	ct := image.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("le champ image n'accepte que des fichiers image (reçu %q)", ct)
	}

	ct = projectFiles.Header.Get("Content-Type")
	switch ct {
	case "application/zip", "application/x-zip-compressed", "application/octet-stream":
	default:
		return fmt.Errorf("les fichiers du projet doivent être une archive ZIP (reçu %q)", ct)
	}

	ct = documentation.Header.Get("Content-Type")
	switch ct {
	case "application/pdf", "application/octet-stream":
	default:
		return fmt.Errorf("la documentation doit être un PDF (reçu %q)", ct)
	}

	for _, f := range []*multipart.FileHeader{image, projectFiles, documentation} {
		if f.Size > MaxAssetSize {
			return fmt.Errorf("le fichier %s dépasse la taille maximale de 50MB", f.Filename)
		}
	}
	return nil
}

func imageExt(f *multipart.FileHeader) string {
	ext := filepath.Ext(f.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	return ext
}
