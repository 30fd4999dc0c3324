package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"projectstore_backend/internal/models"
)

const productIndex = "products"

// ProductIndex abstrait la recherche produits ; le handler retombe sur
// un scan MongoDB quand l'index est indisponible.
type ProductIndex interface {
	Index(ctx context.Context, p models.Product)
	Remove(ctx context.Context, productID string)
	Search(ctx context.Context, query string) ([]models.Product, error)
}

type ElasticIndex struct {
	Client *elasticsearch.Client
}

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// Index pousse un produit dans l'index de recherche. Best-effort : un
// échec est loggé, jamais remonté au handler.
func (e *ElasticIndex) Index(ctx context.Context, p models.Product) {
	if e.Client == nil {
		log.Println("⚠️ Elastic non initialisé, impossible d'indexer:", p.Title)
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID.Hex(),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, e.Client)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Title, res.String())
	} else {
		log.Printf("✅ Produit indexé dans Elasticsearch: %s", p.Title)
	}
}

// Remove retire un produit supprimé de l'index.
func (e *ElasticIndex) Remove(ctx context.Context, productID string) {
	if e.Client == nil {
		return
	}

	req := esapi.DeleteRequest{
		Index:      productIndex,
		DocumentID: productID,
	}

	res, err := req.Do(ctx, e.Client)
	if err != nil {
		log.Println("❌ Erreur suppression Elastic:", err)
		return
	}
	res.Body.Close()
}

//
// --- RECHERCHE DANS ELASTICSEARCH ---
//

// Search interroge l'index par titre, description ou catégorie.
func (e *ElasticIndex) Search(ctx context.Context, query string) ([]models.Product, error) {
	if e.Client == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title", "description", "category"},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(ctx, e.Client)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch erreur: %+v", e)
		return nil, errors.New("index non trouvé ou vide")
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	products := make([]models.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		products = append(products, hit.Source)
	}
	return products, nil
}
