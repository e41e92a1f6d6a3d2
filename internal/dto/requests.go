package dto

type ComparisonQuery struct {
	Amount string `form:"amount"`
	Method string `form:"method" binding:"required"`
	Sort   string `form:"sort" binding:"omitempty,oneof=catalog net"`
}

type GatewayQuery struct {
	Method string `form:"method"`
}
