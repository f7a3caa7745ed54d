package model

// PredictionRequest: вопрос от клиента, id не проверяется на уникальность
type PredictionRequest struct {
	ID    int    `json:"id"`
	Query string `json:"query"`
}

// PredictionResponse: ответ на вопрос. Answer == nil сериализуется как null
type PredictionResponse struct {
	ID        int      `json:"id"`
	Answer    *int     `json:"answer"`
	Reasoning string   `json:"reasoning"`
	Sources   []string `json:"sources"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
