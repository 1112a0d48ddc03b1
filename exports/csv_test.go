package exports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"nouhin-backend/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{Id: "P001", Name: "りんご", UnitPrice: 80, Unit: "個"},
		{Id: "P002", Name: "みかん", UnitPrice: 60, Unit: "個", Notes: "季節限定"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ProductsTable(sampleProducts()), false))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, []string{"P001", "りんご", "80", "個", "", "", "", "", ""}, rows[1])
	assert.Equal(t, "季節限定", rows[2][7])
}

func TestWriteCSV_ShiftJIS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ProductsTable(sampleProducts()), true))

	raw := buf.Bytes()
	assert.NotContains(t, string(raw), "りんご")

	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "りんご")
}

func TestWriteCSV_ShiftJIS_UnencodableRune(t *testing.T) {
	tbl := Table{
		Name:    "products",
		Columns: []string{"id", "name"},
		Rows:    [][]any{{"P001", "価格€"}},
	}
	var buf bytes.Buffer
	assert.Error(t, WriteCSV(&buf, tbl, true))
}

func TestDeliveriesTable_RowPerItem(t *testing.T) {
	list := []models.Delivery{
		{
			Id: "D001", VoucherNumber: "V00001", DeliveryDate: "2024-05-10", CustomerId: "C001",
			Status: models.StatusUnissued, InvoiceStatus: models.InvoiceStatusUnbilled,
			Items: []models.DeliveryItem{
				{ProductId: "P001", ProductName: "りんご", Quantity: 2, UnitPrice: 80, Unit: "個"},
				{ProductName: "自由入力", Quantity: 1, UnitPrice: 100},
			},
		},
		{Id: "D002", VoucherNumber: "V00002", CustomerId: "C002"},
	}

	tbl := DeliveriesTable(list)
	require.Len(t, tbl.Rows, 3)

	assert.Equal(t, "D001", tbl.Rows[0][0])
	assert.Equal(t, 160.0, tbl.Rows[0][9])
	assert.Equal(t, "D001", tbl.Rows[1][0])
	assert.Equal(t, 100.0, tbl.Rows[1][9])

	// delivery without items still produces one row
	assert.Equal(t, "D002", tbl.Rows[2][0])
	assert.Equal(t, "", tbl.Rows[2][4])
}

func TestExcelRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, ProductsTable(sampleProducts())))

	records, err := ReadRecords(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "P001", records[0]["id"])
	assert.Equal(t, "りんご", records[0]["name"])
	// cell values come back as strings; the import layer coerces them
	price, ok := records[0]["unitPrice"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(price, "80"))
}

func TestReadRecords_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, Table{Name: "products", Columns: []string{"id", "name"}}))

	records, err := ReadRecords(&buf)
	require.NoError(t, err)
	assert.Empty(t, records)
}
