package store

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rootsec1/meals-on-heels/internal/types"
	"github.com/xuri/excelize/v2"
)

// Column headers of the Mobile Food Facility Permit dataset
const (
	colLocationID              = "locationid"
	colApplicant               = "Applicant"
	colFacilityType            = "FacilityType"
	colCNN                     = "cnn"
	colLocationDescription     = "LocationDescription"
	colAddress                 = "Address"
	colBlockLot                = "blocklot"
	colBlock                   = "block"
	colLot                     = "lot"
	colPermit                  = "permit"
	colStatus                  = "Status"
	colFoodItems               = "FoodItems"
	colX                       = "X"
	colY                       = "Y"
	colLatitude                = "Latitude"
	colLongitude               = "Longitude"
	colSchedule                = "Schedule"
	colDaysHours               = "dayshours"
	colNOISent                 = "NOISent"
	colReceived                = "Received"
	colPriorPermit             = "PriorPermit"
	colLocation                = "Location"
	colFirePreventionDistricts = "Fire Prevention Districts"
	colPoliceDistricts         = "Police Districts"
	colSupervisorDistricts     = "Supervisor Districts"
	colZipCodes                = "Zip Codes"
	colNeighborhoodsOld        = "Neighborhoods (old)"
)

// LoadReport summarises one seed file read
type LoadReport struct {
	Rows    int // data rows seen, header excluded
	Loaded  int // distinct records returned
	Skipped int // rows rejected by parsing or validation
}

// Loader turns seed files into validated FoodTruck records
type Loader struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		logger: logger.With("component", "seed-loader"),
		now:    time.Now,
	}
}

// ReadFile reads a .csv or .xlsx seed file, picking the format by extension
func (l *Loader) ReadFile(path string) ([]types.FoodTruck, LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, errors.Wrapf(err, "failed to open seed file %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return l.ReadCSV(f)
	case ".xlsx":
		return l.ReadXLSX(f)
	default:
		return nil, LoadReport{}, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// ReadCSV reads a comma separated seed file whose first row is the header
func (l *Loader) ReadCSV(r io.Reader) ([]types.FoodTruck, LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, LoadReport{}, errors.Wrap(err, "failed to read CSV")
	}
	if len(records) == 0 {
		return []types.FoodTruck{}, LoadReport{}, nil
	}

	trucks, report := l.parseRows(records[0], records[1:])
	return trucks, report, nil
}

// ReadXLSX reads the first sheet of a workbook whose first row is the header
func (l *Loader) ReadXLSX(r io.Reader) ([]types.FoodTruck, LoadReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, LoadReport{}, errors.Wrap(err, "failed to open workbook")
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []types.FoodTruck{}, LoadReport{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, LoadReport{}, errors.Wrapf(err, "failed to read sheet %q", sheets[0])
	}
	if len(rows) == 0 {
		return []types.FoodTruck{}, LoadReport{}, nil
	}

	trucks, report := l.parseRows(rows[0], rows[1:])
	return trucks, report, nil
}

// parseRows converts data rows into records. Rows that fail are skipped; a
// repeated location id overwrites the earlier record in place.
func (l *Loader) parseRows(header []string, rows [][]string) ([]types.FoodTruck, LoadReport) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		columns[strings.TrimSpace(name)] = i
	}

	now := l.now().UTC()
	report := LoadReport{Rows: len(rows)}
	trucks := make([]types.FoodTruck, 0, len(rows))
	seen := make(map[int64]int, len(rows))

	for i, row := range rows {
		truck, err := parseRow(columns, row)
		if err == nil {
			err = Validate(truck)
		}
		if err != nil {
			report.Skipped++
			// header is line 1
			l.logger.Warn("skipping seed row", "line", i+2, "error", err)
			continue
		}

		if idx, ok := seen[truck.LocationID]; ok {
			truck.CreatedAt = trucks[idx].CreatedAt
			truck.UpdatedAt = now
			trucks[idx] = truck
			continue
		}

		truck.CreatedAt = now
		truck.UpdatedAt = now
		seen[truck.LocationID] = len(trucks)
		trucks = append(trucks, truck)
	}

	report.Loaded = len(trucks)
	l.logger.Info("seed rows parsed",
		"rows", report.Rows,
		"loaded", report.Loaded,
		"skipped", report.Skipped,
	)

	return trucks, report
}

type rowParser struct {
	columns map[string]int
	row     []string
	err     error
}

func (p *rowParser) str(column string) string {
	idx, ok := p.columns[column]
	if !ok || idx >= len(p.row) {
		return ""
	}
	return strings.TrimSpace(p.row[idx])
}

func (p *rowParser) fail(column, value string, cause error) {
	if p.err == nil {
		p.err = errors.Wrapf(ErrMalformedRow, "column %q value %q: %v", column, value, cause)
	}
}

func (p *rowParser) requiredFloat(column string) float64 {
	v := p.str(column)
	if v == "" {
		p.fail(column, v, errors.New("missing value"))
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(column, v, err)
	}
	return f
}

func (p *rowParser) optionalFloat(column string) float64 {
	v := p.str(column)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(column, v, err)
	}
	return f
}

func (p *rowParser) integer64(column string, required bool) int64 {
	v := p.str(column)
	if v == "" {
		if required {
			p.fail(column, v, errors.New("missing value"))
		}
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.fail(column, v, err)
	}
	return n
}

func (p *rowParser) integer(column string) int {
	return int(p.integer64(column, false))
}

func (p *rowParser) boolean(column string) bool {
	v := p.str(column)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(column, v, err)
	}
	return b
}

func parseRow(columns map[string]int, row []string) (types.FoodTruck, error) {
	p := &rowParser{columns: columns, row: row}

	truck := types.FoodTruck{
		LocationID:              p.integer64(colLocationID, true),
		Applicant:               p.str(colApplicant),
		FacilityType:            p.str(colFacilityType),
		CNN:                     p.integer64(colCNN, false),
		LocationDescription:     p.str(colLocationDescription),
		Address:                 p.str(colAddress),
		BlockLot:                p.str(colBlockLot),
		Block:                   p.str(colBlock),
		Lot:                     p.str(colLot),
		Permit:                  p.str(colPermit),
		Status:                  p.str(colStatus),
		FoodItems:               p.str(colFoodItems),
		X:                       p.optionalFloat(colX),
		Y:                       p.optionalFloat(colY),
		Latitude:                p.requiredFloat(colLatitude),
		Longitude:               p.requiredFloat(colLongitude),
		ScheduleURL:             p.str(colSchedule),
		DaysHours:               p.str(colDaysHours),
		NOISent:                 p.str(colNOISent),
		Received:                p.integer(colReceived),
		PriorPermit:             p.boolean(colPriorPermit),
		Location:                p.str(colLocation),
		FirePreventionDistricts: p.integer(colFirePreventionDistricts),
		PoliceDistricts:         p.integer(colPoliceDistricts),
		SupervisorDistricts:     p.integer(colSupervisorDistricts),
		ZipCodes:                p.integer(colZipCodes),
		NeighborhoodsOld:        p.integer(colNeighborhoodsOld),
	}

	if p.err != nil {
		return types.FoodTruck{}, p.err
	}
	return truck, nil
}
