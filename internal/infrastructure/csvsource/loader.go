// Package csvsource carga el exporte CSV de pedidos de compra como snapshot inmutable.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/compras-dashboard/internal/domain"
	"github.com/jhoicas/compras-dashboard/internal/domain/entity"
	"github.com/jhoicas/compras-dashboard/internal/domain/purchasing"
	"github.com/jhoicas/compras-dashboard/internal/domain/repository"
	"github.com/jhoicas/compras-dashboard/pkg/logger"
)

var _ repository.OrderLineSource = (*Loader)(nil)

// Options parámetros de lectura del archivo.
type Options struct {
	Path      string
	Delimiter rune   // por defecto ','
	Encoding  string // utf-8 (defecto), latin1, windows-1252
	Schema    purchasing.Schema
}

// Loader implementa repository.OrderLineSource sobre un archivo CSV.
type Loader struct {
	opts Options
	log  *logger.Logger
}

// NewLoader construye el loader; log nil = descarta logs.
func NewLoader(opts Options, log *logger.Logger) *Loader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{opts: opts, log: log.Component("csvsource")}
}

// Load abre el archivo configurado y lo parsea.
func (l *Loader) Load(ctx context.Context) (*purchasing.Dataset, repository.LoadReport, error) {
	f, err := os.Open(l.opts.Path)
	if err != nil {
		return nil, repository.LoadReport{}, fmt.Errorf("csvsource: abrir %s: %w", l.opts.Path, err)
	}
	defer f.Close()

	ds, report, err := l.Read(ctx, f)
	if err != nil {
		return nil, report, err
	}
	l.log.Info().
		Str("path", l.opts.Path).
		Str("snapshot_id", ds.ID()).
		Int("rows", report.Rows).
		Int("loaded", report.Loaded).
		Int("skipped", report.Skipped).
		Strs("missing_columns", report.MissingColumns).
		Msg("dataset cargado")
	return ds, report, nil
}

// Read parsea un CSV ya abierto. Los problemas por fila no abortan la carga:
// fechas ilegibles quedan marcadas como inválidas y números ilegibles valen cero.
func (l *Loader) Read(ctx context.Context, r io.Reader) (*purchasing.Dataset, repository.LoadReport, error) {
	var report repository.LoadReport

	dec, err := decoderFor(l.opts.Encoding)
	if err != nil {
		return nil, report, err
	}
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.Comma = l.opts.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, report, fmt.Errorf("csvsource: archivo vacío: %w", domain.ErrNoData)
		}
		return nil, report, fmt.Errorf("csvsource: leer encabezado: %w", err)
	}

	schema := l.opts.Schema
	cols := mapHeader(header, schema)
	if _, ok := cols[purchasing.FieldOrderID]; !ok {
		return nil, report, fmt.Errorf("csvsource: %w: %q", domain.ErrMissingColumns, schema.Column(purchasing.FieldOrderID))
	}

	present := make([]purchasing.Field, 0, len(cols))
	for _, f := range purchasing.AllFields {
		if _, ok := cols[f]; ok {
			present = append(present, f)
		} else if name := schema.Column(f); name != "" {
			report.MissingColumns = append(report.MissingColumns, name)
		}
	}
	// Año/mes derivables de la fecha de emisión cuentan como presentes.
	if _, ok := cols[purchasing.FieldIssueDate]; ok {
		present = appendMissing(present, purchasing.FieldYear, purchasing.FieldMonth)
	}

	var lines []entity.OrderLine
	for {
		if report.Rows%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, report, err
			}
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, report, fmt.Errorf("csvsource: leer fila %d: %w", report.Rows+1, err)
			}
			report.Rows++
			report.Skipped++
			report.Warn(fmt.Sprintf("fila %d: %v", report.Rows, err))
			continue
		}
		report.Rows++

		row := rowReader{record: record, cols: cols}
		line, problems, ok := row.orderLine()
		for _, p := range problems {
			report.Warn(fmt.Sprintf("fila %d: %s", report.Rows, p))
		}
		if !ok {
			report.Skipped++
			continue
		}
		lines = append(lines, line)
	}
	report.Loaded = len(lines)

	if report.Skipped > 0 {
		l.log.Warn().Int("skipped", report.Skipped).Strs("sample", report.Warnings).Msg("filas descartadas en la carga")
	}
	return purchasing.NewDataset(uuid.NewString(), schema, lines, present), report, nil
}

// decoderFor traduce el nombre de codificación a un transformer de x/text.
func decoderFor(encoding string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		// Elimina el BOM que agregan los exportes de Excel.
		return unicode.BOMOverride(transform.Nop), nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	}
	return nil, fmt.Errorf("csvsource: codificación %q no soportada: %w", encoding, domain.ErrInvalidInput)
}

// mapHeader ubica cada campo del esquema en el encabezado (comparación sin espacios ni mayúsculas).
func mapHeader(header []string, schema purchasing.Schema) map[purchasing.Field]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	cols := make(map[purchasing.Field]int)
	for _, f := range purchasing.AllFields {
		name := strings.ToLower(strings.TrimSpace(schema.Column(f)))
		if name == "" {
			continue
		}
		if i, ok := index[name]; ok {
			cols[f] = i
		}
	}
	return cols
}

func appendMissing(fields []purchasing.Field, extra ...purchasing.Field) []purchasing.Field {
	for _, e := range extra {
		found := false
		for _, f := range fields {
			if f == e {
				found = true
				break
			}
		}
		if !found {
			fields = append(fields, e)
		}
	}
	return fields
}

// rowReader acceso por campo a un registro CSV.
type rowReader struct {
	record []string
	cols   map[purchasing.Field]int
}

func (r rowReader) get(f purchasing.Field) string {
	i, ok := r.cols[f]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r rowReader) amount(f purchasing.Field, problems *[]string) decimal.Decimal {
	raw := r.get(f)
	d, ok := parseDecimal(raw)
	if !ok && raw != "" && !strings.EqualFold(raw, "nan") {
		*problems = append(*problems, fmt.Sprintf("%s ilegible %q", f, raw))
	}
	return d
}

// orderLine convierte el registro; ok=false si la fila no tiene pedido o período.
func (r rowReader) orderLine() (entity.OrderLine, []string, bool) {
	var problems []string

	line := entity.OrderLine{
		OrderID:              r.get(purchasing.FieldOrderID),
		IssueDate:            entity.ParseDate(r.get(purchasing.FieldIssueDate)),
		ExpectedDeliveryDate: entity.ParseDate(r.get(purchasing.FieldExpectedDate)),
		ArrivalDate:          entity.ParseDate(r.get(purchasing.FieldArrivalDate)),
		Supplier:             r.get(purchasing.FieldSupplier),
		Buyer:                r.get(purchasing.FieldBuyer),
		ProductDescription:   r.get(purchasing.FieldProduct),
		OrderStatus:          r.get(purchasing.FieldOrderStatus),
		Situation:            r.get(purchasing.FieldSituation),
		ItemQuantity:         r.amount(purchasing.FieldItemQuantity, &problems),
		GrossValue:           r.amount(purchasing.FieldGrossValue, &problems),
		NetValue:             r.amount(purchasing.FieldNetValue, &problems),
	}
	if p, ok := parseDecimal(r.get(purchasing.FieldUnitNetPrice)); ok {
		line.UnitNetPrice = decimal.NullDecimal{Decimal: p, Valid: true}
	}

	if line.OrderID == "" {
		return line, append(problems, "sin número de pedido"), false
	}

	year, yearOK := parseInt(r.get(purchasing.FieldYear))
	month, monthOK := purchasing.ParseMonth(r.get(purchasing.FieldMonth))
	if !monthOK {
		if m, ok := parseInt(r.get(purchasing.FieldMonth)); ok && m >= 1 && m <= 12 {
			month, monthOK = m, true
		}
	}
	if (!yearOK || !monthOK) && line.IssueDate.Valid() {
		t := line.IssueDate.Time()
		year, month = t.Year(), int(t.Month())
		yearOK, monthOK = true, true
	}
	if !yearOK || !monthOK {
		return line, append(problems, "sin año/mes ni fecha de emisión válida"), false
	}
	line.Year, line.Month = year, month

	dates := map[purchasing.Field]entity.Date{
		purchasing.FieldIssueDate:    line.IssueDate,
		purchasing.FieldExpectedDate: line.ExpectedDeliveryDate,
		purchasing.FieldArrivalDate:  line.ArrivalDate,
	}
	for _, f := range []purchasing.Field{purchasing.FieldIssueDate, purchasing.FieldExpectedDate, purchasing.FieldArrivalDate} {
		if dates[f].State() == entity.DateInvalid {
			problems = append(problems, fmt.Sprintf("%s ilegible %q", f, r.get(f)))
		}
	}
	return line, problems, true
}
