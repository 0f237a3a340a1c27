package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dds/database"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler выгрузка журнала операций
type ExportHandler struct{}

// NewExportHandler создаёт обработчик выгрузки
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

var exportHeader = []string{"ID", "Дата", "Статус", "Тип операции", "Категория", "Подкатегория", "Сумма", "Комментарий"}

// exportRows выбирает записи журнала по тем же фильтрам, что и список
func exportRows(c *gin.Context) ([]movementRow, bool) {
	var req MovementListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "некорректные параметры запроса"))
		return nil, false
	}

	query, errs := buildMovementQuery(database.DB, req)
	if errs != nil {
		FieldErrors(c, errs)
		return nil, false
	}

	var rows []movementRow
	if err := query.Select(movementSelect).
		Order(movementOrdering(req.Ordering)).
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "запрос не выполнен"))
		return nil, false
	}
	return rows, true
}

func exportFilename(ext string) string {
	return fmt.Sprintf("dds_%s.%s", time.Now().Format("2006-01-02"), ext)
}

// ExportExcel выгрузить журнал операций в Excel
// @Summary Выгрузка журнала в Excel
// @Description Выгружает отфильтрованный журнал операций в файл xlsx. Параметры фильтрации те же, что у списка операций.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param created_date_after query string false "Начало периода (YYYY-MM-DD)"
// @Param created_date_before query string false "Конец периода (YYYY-MM-DD)"
// @Param status query int false "Фильтр по статусу"
// @Param operation_type query int false "Фильтр по типу операции"
// @Param category query int false "Фильтр по категории"
// @Param subcategory query int false "Фильтр по подкатегории"
// @Param search query string false "Поиск"
// @Param ordering query string false "Сортировка"
// @Success 200 {file} file "Файл xlsx"
// @Failure 400 {object} models.ValidationErrors
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	rows, ok := exportRows(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Журнал ДДС"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	for i, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, title)
	}
	f.SetCellStyle(sheetName, "A1", "H1", headerStyle)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "F", 18)
	f.SetColWidth(sheetName, "H", "H", 40)

	for i, r := range rows {
		values := []interface{}{
			r.ID,
			r.CreatedDate.Format("2006-01-02 15:04:05"),
			r.StatusName,
			r.OperationTypeName,
			r.CategoryName,
			r.SubcategoryName,
			r.Amount,
			r.Comment,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		InternalError(c, SafeErrorMessage(err, "формирование файла не выполнено"))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFilename("xlsx"))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ExportCSV выгрузить журнал операций в CSV
// @Summary Выгрузка журнала в CSV
// @Description Выгружает отфильтрованный журнал операций в CSV (UTF-8 с BOM для Excel)
// @Tags export
// @Produce text/csv
// @Param created_date_after query string false "Начало периода (YYYY-MM-DD)"
// @Param created_date_before query string false "Конец периода (YYYY-MM-DD)"
// @Param search query string false "Поиск"
// @Success 200 {file} file "Файл CSV"
// @Failure 400 {object} models.ValidationErrors
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, ok := exportRows(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	// BOM, иначе Excel не распознаёт UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(&buf)
	_ = w.Write(exportHeader)
	for _, r := range rows {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.CreatedDate.Format("2006-01-02 15:04:05"),
			r.StatusName,
			r.OperationTypeName,
			r.CategoryName,
			r.SubcategoryName,
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
			r.Comment,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		InternalError(c, SafeErrorMessage(err, "формирование файла не выполнено"))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFilename("csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON выгрузить журнал операций в JSON
// @Summary Выгрузка журнала в JSON
// @Description Выгружает отфильтрованный журнал операций одним JSON-массивом
// @Tags export
// @Produce json
// @Param created_date_after query string false "Начало периода (YYYY-MM-DD)"
// @Param created_date_before query string false "Конец периода (YYYY-MM-DD)"
// @Param search query string false "Поиск"
// @Success 200 {array} MovementView
// @Failure 400 {object} models.ValidationErrors
// @Router /api/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	rows, ok := exportRows(c)
	if !ok {
		return
	}

	views := make([]MovementView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFilename("json"))
	c.JSON(http.StatusOK, views)
}
