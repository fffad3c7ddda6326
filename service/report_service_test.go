package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"madeireira-orcamento/models"
)

func TestSummarize(t *testing.T) {
	sales := []models.Sale{
		{ClientName: "MARIA SILVA", Total: 360, Profit: 358.92},
		{ClientName: "ANA SOUZA", Total: 0.1, Profit: 0.05},
		{ClientName: "MARIA SILVA", Total: 200, Profit: 190.28},
		{ClientName: "ANA SOUZA", Total: 0.2, Profit: 0.05},
	}

	summary := summarize(sales)
	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, 560.3, summary.Total)
	assert.Equal(t, 549.3, summary.Profit)

	require.Len(t, summary.PerClient, 2)
	assert.Equal(t, models.ClientSalesTotal{ClientName: "ANA SOUZA", Count: 2, Total: 0.3, Profit: 0.1}, summary.PerClient[0])
	assert.Equal(t, models.ClientSalesTotal{ClientName: "MARIA SILVA", Count: 2, Total: 560, Profit: 549.2}, summary.PerClient[1])
}

func TestSummarizeEmpty(t *testing.T) {
	summary := summarize(nil)
	assert.Zero(t, summary.Count)
	assert.Zero(t, summary.Total)
	assert.NotNil(t, summary.PerClient)
	assert.Empty(t, summary.PerClient)
}

func TestReportService_ExportSales(t *testing.T) {
	f := newTicketFixture(t)
	f.prepareQuote(t)
	_, err := f.tickets.Generate(context.Background(), testMeta())
	require.NoError(t, err)

	reports := NewReportService(f.session)
	summary := reports.Summary()
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 360.0, summary.Total)

	var buf bytes.Buffer
	require.NoError(t, reports.ExportSales(&buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{"Vendas", "Resumo"}, book.GetSheetList())

	rows, err := book.GetRows("Vendas")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cliente", rows[0][1])
	assert.Equal(t, "MARIA SILVA", rows[1][1])
	assert.Equal(t, "TABUA PINUS", rows[1][2])
	assert.Equal(t, "360", rows[1][7])

	summaryRows, err := book.GetRows("Resumo")
	require.NoError(t, err)
	require.Len(t, summaryRows, 3)
	assert.Equal(t, []string{"MARIA SILVA", "1", "360", "358.92"}, summaryRows[1])
	assert.Equal(t, "TOTAL", summaryRows[2][0])
}
