package model

// カートの明細
// 商品は追加時点のスナップショットを埋め込む。
// 同じカート内で同一商品の明細は最大1つ。
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}
