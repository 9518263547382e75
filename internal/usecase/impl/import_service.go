package impl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/infra/metrics"
	"locator/internal/usecase"

	"go.uber.org/fx"
)

// CSV columns understood by the importer.
const (
	colStoreID    = "store_id"
	colName       = "name"
	colStoreType  = "store_type"
	colStatus     = "status"
	colLatitude   = "latitude"
	colLongitude  = "longitude"
	colStreet     = "address_street"
	colCity       = "address_city"
	colState      = "address_state"
	colPostalCode = "address_postal_code"
	colCountry    = "address_country"
	colPhone      = "phone"
	colServices   = "services"
	colHoursFmt   = "hours_%s"
)

const utf8BOM = "\ufeff"

var errCoordinatesUnresolved = errors.New("could not determine coordinates")

// importService implements usecase.ImportUsecase.
type importService struct {
	txManager     repository.TransactionManager
	geocode       usecase.GeocodeUsecase
	progressEvery int
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// ImportServiceParams holds dependencies for importService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Geocode   usecase.GeocodeUsecase
	Config    *config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Metrics `optional:"true"`
}

// NewImportService is the constructor for importService.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	progressEvery := 0
	if params.Config != nil && params.Config.Import != nil {
		progressEvery = params.Config.Import.ProgressEvery
	}

	return &importService{
		txManager:     params.TxManager,
		geocode:       params.Geocode,
		progressEvery: progressEvery,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Import runs every data row in its own savepoint inside one transaction. The row loop
// is detached from the caller's cancellation so an aborted request still finishes the batch.
func (srv *importService) Import(ctx context.Context, r io.Reader) (*usecase.ImportReport, error) {
	ctx = context.WithoutCancel(ctx)
	started := time.Now()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domainerrors.ErrInvalidCSVFile.WithDetails("file is empty")
	}
	if err != nil {
		return nil, domainerrors.ErrInvalidCSVFile.WithDetails(err.Error())
	}

	columns := indexColumns(header)
	var missing []string
	for _, required := range []string{colStoreID, colName} {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrInvalidCSVHeader.WithDetails("missing required columns: " + strings.Join(missing, ", "))
	}

	report := &usecase.ImportReport{Results: []usecase.ImportRowResult{}}

	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		known, err := f.ServiceTagRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to preload service tags")
		}

		tags := make(map[string]*entity.ServiceTag, len(known))
		for _, tag := range known {
			tags[tag.Name] = tag
		}

		for rowNumber := 2; ; rowNumber++ {
			record, readErr := reader.Read()
			if errors.Is(readErr, io.EOF) {
				break
			}

			var result usecase.ImportRowResult
			if readErr != nil {
				result = failedRow(rowNumber, "", "malformed CSV row: "+readErr.Error())
			} else {
				result = srv.importRow(ctx, f, tags, rowNumber, newCSVRow(columns, record))
			}

			report.Add(result)
			srv.metrics.ImportRow(result.Status)

			if srv.progressEvery > 0 && report.TotalRows%srv.progressEvery == 0 {
				srv.log(ctx).Info("Import progress",
					slog.Int("rows", report.TotalRows),
					slog.Int("created", report.Created),
					slog.Int("updated", report.Updated),
					slog.Int("failed", report.Failed),
				)
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "import transaction failed")
	}

	srv.log(ctx).Info("Import finished",
		slog.Int("rows", report.TotalRows),
		slog.Int("created", report.Created),
		slog.Int("updated", report.Updated),
		slog.Int("failed", report.Failed),
		slog.Duration("elapsed", time.Since(started)),
	)

	return report, nil
}

// importRow validates, resolves coordinates and upserts a single row inside a savepoint.
// Tags created by a failed row never reach the shared tag map.
func (srv *importService) importRow(
	ctx context.Context,
	f repository.RepositoryFactory,
	tags map[string]*entity.ServiceTag,
	rowNumber int,
	row csvRow,
) usecase.ImportRowResult {
	storeID := row.value(colStoreID)

	parsed, err := parseImportRow(row)
	if err != nil {
		return failedRow(rowNumber, storeID, err.Error())
	}

	if parsed.update.Location == nil && parsed.hasAddress {
		if coords, ok := srv.geocode.Resolve(ctx, parsed.address.GeocodeQuery()); ok {
			parsed.update.Location = &coords
		}
	}

	status := usecase.ImportStatusCreated
	pending := make(map[string]*entity.ServiceTag)

	err = f.Nested(ctx, func(nf repository.RepositoryFactory) error {
		storeRepo := nf.StoreRepo()

		_, err := storeRepo.FindByStoreID(ctx, storeID)
		switch {
		case err == nil:
			status = usecase.ImportStatusUpdated
			if err := storeRepo.Update(ctx, storeID, parsed.update); err != nil {
				return err
			}
		case errors.Is(err, repository.ErrStoreNotFound):
			if parsed.update.Location == nil {
				return errCoordinatesUnresolved
			}

			store := entity.NewStore(storeID, *parsed.update.Name, *parsed.update.Location)
			parsed.update.Apply(store)
			if err := storeRepo.Create(ctx, store); err != nil {
				return err
			}
		default:
			return err
		}

		if parsed.update.Services == nil {
			return nil
		}

		rowTags, err := resolveTags(ctx, nf.ServiceTagRepo(), tags, pending, *parsed.update.Services)
		if err != nil {
			return err
		}

		return storeRepo.ReplaceServices(ctx, storeID, rowTags)
	})
	if err != nil {
		srv.log(ctx).Debug("Import row failed", slog.Int("row", rowNumber), slog.String("store_id", storeID), slog.Any("error", err))

		return failedRow(rowNumber, storeID, rowErrorMessage(err))
	}

	for name, tag := range pending {
		tags[name] = tag
	}

	return usecase.ImportRowResult{RowNumber: rowNumber, StoreID: storeID, Status: status}
}

// resolveTags maps names to tags, creating unknown ones. New tags are parked in pending
// until the row's savepoint is released.
func resolveTags(
	ctx context.Context,
	tagRepo repository.ServiceTagRepository,
	known, pending map[string]*entity.ServiceTag,
	names []string,
) ([]*entity.ServiceTag, error) {
	resolved := make([]*entity.ServiceTag, 0, len(names))
	for _, name := range names {
		if tag, ok := known[name]; ok {
			resolved = append(resolved, tag)

			continue
		}
		if tag, ok := pending[name]; ok {
			resolved = append(resolved, tag)

			continue
		}

		tag, err := tagRepo.FindOrCreateByName(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve service %q", name)
		}
		pending[name] = tag
		resolved = append(resolved, tag)
	}

	return resolved, nil
}

func rowErrorMessage(err error) string {
	switch {
	case errors.Is(err, repository.ErrDuplicateStore):
		return "store already exists"
	case errors.Is(err, repository.ErrStoreNotFound):
		return "store not found"
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.Details() != "" {
		return appErr.Message() + ": " + appErr.Details()
	}

	return err.Error()
}

func failedRow(rowNumber int, storeID, message string) usecase.ImportRowResult {
	return usecase.ImportRowResult{
		RowNumber: rowNumber,
		StoreID:   storeID,
		Status:    usecase.ImportStatusFailed,
		Error:     message,
	}
}

// --- Row parsing ---

// csvRow gives by-name access to the trimmed cells of one record. Empty cells read as absent.
type csvRow struct {
	columns map[string]int
	record  []string
}

func newCSVRow(columns map[string]int, record []string) csvRow {
	return csvRow{columns: columns, record: record}
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, dup := columns[name]; !dup && name != "" {
			columns[name] = i
		}
	}

	return columns
}

func (r csvRow) value(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.record) {
		return ""
	}

	return strings.TrimSpace(r.record[idx])
}

func (r csvRow) lookup(column string) (string, bool) {
	v := r.value(column)

	return v, v != ""
}

// parsedRow is a validated row expressed as a partial store update.
type parsedRow struct {
	update     *entity.StoreUpdate
	address    entity.Address
	hasAddress bool
}

func parseImportRow(row csvRow) (*parsedRow, error) {
	storeID, ok := row.lookup(colStoreID)
	if !ok {
		return nil, errors.New("store_id is required")
	}
	if len(storeID) > 50 {
		return nil, errors.Errorf("store_id exceeds 50 characters: %s", storeID)
	}

	name, ok := row.lookup(colName)
	if !ok {
		return nil, errors.New("name is required")
	}

	update := &entity.StoreUpdate{Name: &name}

	if v, ok := row.lookup(colStoreType); ok {
		storeType := entity.StoreType(strings.ToLower(v))
		if !storeType.IsValid() {
			return nil, errors.Errorf("invalid store_type: %s", v)
		}
		update.StoreType = &storeType
	}

	if v, ok := row.lookup(colStatus); ok {
		status := entity.StoreStatus(strings.ToLower(v))
		if !status.IsValid() {
			return nil, errors.Errorf("invalid status: %s", v)
		}
		update.Status = &status
	}

	lat, hasLat, err := parseCoordinate(row, colLatitude, 90)
	if err != nil {
		return nil, err
	}
	lon, hasLon, err := parseCoordinate(row, colLongitude, 180)
	if err != nil {
		return nil, err
	}
	if hasLat && hasLon {
		update.Location = &entity.Coordinates{Latitude: lat, Longitude: lon}
	}

	parsed := &parsedRow{update: update}

	addressFields := []struct {
		column string
		target **string
		value  *string
	}{
		{colStreet, &update.Street, &parsed.address.Street},
		{colCity, &update.City, &parsed.address.City},
		{colState, &update.State, &parsed.address.State},
		{colPostalCode, &update.PostalCode, &parsed.address.PostalCode},
		{colCountry, &update.Country, &parsed.address.Country},
	}
	for _, field := range addressFields {
		if v, ok := row.lookup(field.column); ok {
			*field.target = &v
			*field.value = v
			parsed.hasAddress = true
		}
	}

	if v, ok := row.lookup(colPhone); ok {
		update.Phone = &v
	}

	if v, ok := row.lookup(colServices); ok {
		services := entity.NormalizeServiceNames(entity.ParseServices(v))
		update.Services = &services
	}

	for _, day := range entity.WeekdayKeys {
		v, ok := row.lookup(fmt.Sprintf(colHoursFmt, day.Key))
		if !ok {
			continue
		}
		if err := entity.ValidateHours(v); err != nil {
			return nil, errors.Errorf("invalid hours for %s: %s", day.Key, v)
		}
		if update.Hours == nil {
			update.Hours = make(map[time.Weekday]string, len(entity.WeekdayKeys))
		}
		update.Hours[day.Day] = normalizeHours(v)
	}

	return parsed, nil
}

func parseCoordinate(row csvRow, column string, limit float64) (float64, bool, error) {
	v, ok := row.lookup(column)
	if !ok {
		return 0, false, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, errors.Errorf("invalid %s: %s", column, v)
	}
	if math.IsNaN(f) || f < -limit || f > limit {
		return 0, false, errors.Errorf("%s out of range: %s", column, v)
	}

	return f, true, nil
}

// normalizeHours stores every spelling of "closed" in lower case.
func normalizeHours(hours string) string {
	if strings.EqualFold(hours, entity.HoursClosed) {
		return entity.HoursClosed
	}

	return hours
}
