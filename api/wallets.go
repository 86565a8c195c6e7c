package api

import (
	"net/http"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	apimodels "github.com/SwiftFiat/SwiftFiat-Escrow/api/models"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/gin-gonic/gin"
)

type Wallet struct {
	server *Server
}

func (w Wallet) router(server *Server) {
	w.server = server

	serverGroupV1 := server.v1().Group("/wallet")
	serverGroupV1.GET("", w.getWallet)
	serverGroupV1.GET("/transactions", w.getTransactions)
	serverGroupV1.GET("/reconcile", w.reconcile)
	serverGroupV1.GET("/invoices", w.getInvoices)

	adminGroup := server.admin().Group("/wallets")
	adminGroup.POST("/deposits", w.creditDeposit)
}

func (w *Wallet) getWallet(ctx *gin.Context) {
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	wallet, err := w.server.wallets.GetWallet(ctx.Request.Context(), actor.UserID)
	if err != nil {
		w.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Fetched Successfully", apimodels.ToWalletResponse(wallet)))
}

func (w *Wallet) getTransactions(ctx *gin.Context) {
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}
	limit, offset := pageParams(ctx)

	txs, err := w.server.wallets.ListTransactions(ctx.Request.Context(), actor.UserID, limit, offset)
	if err != nil {
		w.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transactions Fetched Successfully", apimodels.ToWalletTransactionCollectionResponse(txs)))
}

func (w *Wallet) reconcile(ctx *gin.Context) {
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}

	rec, err := w.server.wallets.Reconcile(ctx.Request.Context(), actor.UserID)
	if err != nil {
		w.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Reconciled", apimodels.ToReconciliationResponse(rec)))
}

func (w *Wallet) getInvoices(ctx *gin.Context) {
	actor, ok := activeActor(ctx)
	if !ok {
		return
	}
	limit, _ := pageParams(ctx)

	invoices, err := w.server.invoices.ListForUser(ctx.Request.Context(), actor.UserID, limit)
	if err != nil {
		w.server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Invoices Fetched Successfully", apimodels.ToInvoiceCollectionResponse(invoices)))
}

// creditDeposit is where a payment gateway's confirmed top-up lands. A
// repeated reference is answered with the original transaction.
func (w *Wallet) creditDeposit(ctx *gin.Context) {
	request := struct {
		UserID       apimodels.ID `json:"userId" binding:"required"`
		AmountRupees string       `json:"amountRupees" binding:"required,rupees"`
		Reference    string       `json:"reference" binding:"required,max=200"`
		Note         string       `json:"note" binding:"max=2000"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidDepositInput))
		return
	}

	amountCents, err := currency.ParsePositiveRupees(request.AmountRupees)
	if err != nil {
		w.server.respondError(ctx, err)
		return
	}

	tx, replayed, err := w.server.wallets.CreditDeposit(ctx.Request.Context(), int64(request.UserID), amountCents, request.Reference, request.Note)
	if err != nil {
		w.server.respondError(ctx, err)
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	ctx.JSON(status, basemodels.NewSuccess("Deposit Credited", apimodels.DepositResponse{
		Transaction: apimodels.ToWalletTransactionResponse(tx),
		Replayed:    replayed,
	}))
}
