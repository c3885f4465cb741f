package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"court_watch_go/models"
	"court_watch_go/services/sources"
)

// CauseListFetcher fetches the raw cause-list document for a source and date.
// Satisfied by sources.Client; tests substitute a canned fetcher.
type CauseListFetcher interface {
	FetchCauseList(src sources.Source, date time.Time) ([]byte, error)
}

// ImportResult tracks per-run import counts.
type ImportResult struct {
	Success int
	Failed  int
}

func (r *ImportResult) add(other ImportResult) {
	r.Success += other.Success
	r.Failed += other.Failed
}

func (r ImportResult) String() string {
	return fmt.Sprintf("Successful: %d, Failed: %d", r.Success, r.Failed)
}

// CourtDataImporter drives the daily ingestion: fetch one document per
// configured source, parse it into case records, normalize the noisy fields,
// and upsert cases and hearings by their derived identities. Failures are
// isolated per record; a bad record never aborts the rest of the run.
type CourtDataImporter struct {
	Store   *CaseStore
	Fetcher CauseListFetcher
	Sources []sources.Source
}

func NewCourtDataImporter(store *CaseStore, fetcher CauseListFetcher, srcs []sources.Source) *CourtDataImporter {
	return &CourtDataImporter{Store: store, Fetcher: fetcher, Sources: srcs}
}

// ImportForDate imports cause lists from every configured source for the
// target date and returns the aggregate counts.
func (imp *CourtDataImporter) ImportForDate(date time.Time) ImportResult {
	log.Printf("[IMPORT] Starting court data import for date: %s", date.Format("2006-01-02"))

	var result ImportResult
	for _, src := range imp.Sources {
		result.add(imp.importSource(src, date))
	}

	log.Printf("[IMPORT] Court data import completed for %s: %s", date.Format("2006-01-02"), result)
	return result
}

func (imp *CourtDataImporter) importSource(src sources.Source, date time.Time) ImportResult {
	var result ImportResult

	body, err := imp.Fetcher.FetchCauseList(src, date)
	if err != nil {
		log.Printf("[IMPORT] Failed to fetch cause list from %s: %v", src.Name, err)
		result.Failed++
		return result
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		log.Printf("[IMPORT] Empty cause list from %s for %s", src.Name, date.Format("2006-01-02"))
		return result
	}

	records, err := parseCauseList(body)
	if err != nil {
		log.Printf("[IMPORT] Failed to parse cause list from %s: %v", src.Name, err)
		result.Failed++
		return result
	}
	log.Printf("[IMPORT] Found %d cases in cause list from %s", len(records), src.Name)

	for _, rec := range records {
		if err := imp.processRecord(rec, src); err != nil {
			log.Printf("[IMPORT] Failed to process court case %s/%s: %v", rec.CaseNo, rec.CaseYear, err)
			result.Failed++
			continue
		}
		result.Success++
	}
	return result
}

// causeListRecord is one parsed entry of a cause-list document. Name fields
// are already cleaned; other fields default to "" when absent so downstream
// code never sees a null.
type causeListRecord struct {
	CourtNo                 string
	CourtRemarks            string
	StageName               string
	CaseType                string
	CaseNo                  string
	CaseYear                string
	PetitionerNames         string
	RespondentNames         string
	PetitionerAdvocateNames string
	RespondentAdvocateNames string
	Extra                   *extraCases
}

// extraCases carries the parallel arrays describing cases linked to a main
// case.
type extraCases struct {
	CaseNos                 []string
	CaseYears               []string
	CaseTypes               []string
	PetitionerNames         []string
	RespondentNames         []string
	PetitionerAdvocateNames []string
	RespondentAdvocateNames []string
}

func (e *extraCases) isEmpty() bool {
	return len(e.CaseNos) == 0 && len(e.CaseYears) == 0
}

// parseCauseList decodes the document, which is either a single record object
// or an array of them.
func parseCauseList(data []byte) ([]causeListRecord, error) {
	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode cause list: %w", err)
	}

	switch v := root.(type) {
	case []interface{}:
		records := make([]causeListRecord, 0, len(v))
		for _, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				records = append(records, parseRecord(obj))
			}
		}
		return records, nil
	case map[string]interface{}:
		return []causeListRecord{parseRecord(v)}, nil
	default:
		return nil, fmt.Errorf("unexpected cause list document shape")
	}
}

func parseRecord(node map[string]interface{}) causeListRecord {
	rec := causeListRecord{
		CourtNo:      getText(node, "courtno"),
		CourtRemarks: getText(node, "courtremarks"),
		StageName:    getText(node, "stagename"),
		CaseType:     getText(node, "mcasetype"),
		CaseNo:       getText(node, "mcaseno"),
		CaseYear:     getText(node, "mcaseyr"),

		// Clean names during parsing so every downstream consumer sees the
		// same canonical strings.
		PetitionerNames:         CleanNames(getText(node, "pname")),
		RespondentNames:         CleanNames(getText(node, "rname")),
		PetitionerAdvocateNames: CleanNames(getTextOrFirst(node, "mpadv")),
		RespondentAdvocateNames: CleanNames(getTextOrFirst(node, "mradv")),
	}

	if extraNode, ok := node["extra"].(map[string]interface{}); ok {
		rec.Extra = &extraCases{
			CaseNos:                 getList(extraNode, "excaseno"),
			CaseYears:               getList(extraNode, "excaseyr"),
			CaseTypes:               getList(extraNode, "excasetype"),
			PetitionerNames:         getList(extraNode, "expname"),
			RespondentNames:         getList(extraNode, "exrname"),
			PetitionerAdvocateNames: getList(extraNode, "expadv"),
			RespondentAdvocateNames: getList(extraNode, "exradv"),
		}
	}
	return rec
}

func (imp *CourtDataImporter) processRecord(rec causeListRecord, src sources.Source) error {
	mainCase, err := imp.upsertMainCase(rec, src)
	if err != nil {
		return err
	}
	if err := imp.upsertHearing(rec, mainCase); err != nil {
		return err
	}

	if rec.Extra != nil && !rec.Extra.isEmpty() {
		imp.processExtraCases(rec.Extra, mainCase, src)
	}
	return nil
}

func (imp *CourtDataImporter) upsertMainCase(rec causeListRecord, src sources.Source) (*models.CourtCase, error) {
	caseYear, err := strconv.Atoi(rec.CaseYear)
	if err != nil {
		return nil, fmt.Errorf("invalid case year %q: %w", rec.CaseYear, err)
	}

	caseID := GenerateCaseID(src.Prefix, src.District, rec.CaseNo, rec.CaseYear)
	courtCase, err := imp.Store.GetCaseByID(caseID)
	if err != nil {
		return nil, err
	}
	if courtCase == nil {
		courtCase = &models.CourtCase{
			CaseID:       caseID,
			CourtLevel:   src.CourtLevel,
			State:        src.State,
			District:     src.District,
			CourtComplex: src.CourtComplex,
		}
	}

	// Overwrite mutable fields with the latest data.
	courtCase.CaseType = NormalizeCaseType(rec.CaseType)
	courtCase.CaseNo = rec.CaseNo
	courtCase.CaseYear = caseYear
	courtCase.PetitionerNames = rec.PetitionerNames
	courtCase.RespondentNames = rec.RespondentNames
	courtCase.PetitionerAdvocateNames = rec.PetitionerAdvocateNames
	courtCase.RespondentAdvocateNames = rec.RespondentAdvocateNames

	if err := imp.Store.SaveCase(courtCase); err != nil {
		return nil, err
	}
	return courtCase, nil
}

func (imp *CourtDataImporter) upsertHearing(rec causeListRecord, courtCase *models.CourtCase) error {
	hearingDatetime := ParseHearingDateTime(rec.CourtRemarks)
	hearingID := imp.Store.HearingIdentity(courtCase.CaseID, rec.CourtRemarks, hearingDatetime)

	hearing, err := imp.Store.GetHearingByID(hearingID)
	if err != nil {
		return err
	}
	if hearing == nil {
		hearing = &models.CourtHearing{HearingID: hearingID}
	}

	hearing.CaseID = courtCase.CaseID
	hearing.CourtNo = rec.CourtNo
	hearing.Stage = rec.StageName
	hearing.HearingDatetime = hearingDatetime
	hearing.CourtRemarks = rec.CourtRemarks

	return imp.Store.SaveHearing(hearing)
}

// processExtraCases upserts linked cases as children of the main case. Extras
// get no hearing of their own; they share the listing context of the main
// case they were published alongside.
func (imp *CourtDataImporter) processExtraCases(extra *extraCases, mainCase *models.CourtCase, src sources.Source) {
	for i := range extra.CaseNos {
		if err := imp.upsertExtraCase(extra, i, mainCase, src); err != nil {
			log.Printf("[IMPORT] Failed to process extra case at index %d: %v", i, err)
		}
	}
}

func (imp *CourtDataImporter) upsertExtraCase(extra *extraCases, i int, mainCase *models.CourtCase, src sources.Source) error {
	caseNo := atIndex(extra.CaseNos, i)
	caseYearStr := atIndex(extra.CaseYears, i)
	if caseNo == "" || caseYearStr == "" {
		return nil
	}

	caseYear, err := strconv.Atoi(caseYearStr)
	if err != nil {
		return fmt.Errorf("invalid case year %q: %w", caseYearStr, err)
	}

	caseID := GenerateCaseID(src.Prefix, src.District, caseNo, caseYearStr)
	extraCase, err := imp.Store.GetCaseByID(caseID)
	if err != nil {
		return err
	}
	if extraCase == nil {
		parentID := mainCase.CaseID
		extraCase = &models.CourtCase{
			CaseID:       caseID,
			CourtLevel:   src.CourtLevel,
			State:        src.State,
			District:     src.District,
			CourtComplex: src.CourtComplex,
			ParentCaseID: &parentID,
		}
	}

	extraCase.CaseType = NormalizeCaseType(atIndex(extra.CaseTypes, i))
	extraCase.CaseNo = caseNo
	extraCase.CaseYear = caseYear
	extraCase.PetitionerNames = CleanNames(atIndex(extra.PetitionerNames, i))
	extraCase.RespondentNames = CleanNames(atIndex(extra.RespondentNames, i))
	extraCase.PetitionerAdvocateNames = CleanNames(atIndex(extra.PetitionerAdvocateNames, i))
	extraCase.RespondentAdvocateNames = CleanNames(atIndex(extra.RespondentAdvocateNames, i))

	return imp.Store.SaveCase(extraCase)
}

// JSON field helpers. Absent or non-string fields become "" so normalization
// is always safe to call.

func getText(node map[string]interface{}, field string) string {
	if s, ok := node[field].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func getTextOrFirst(node map[string]interface{}, field string) string {
	switch v := node[field].(type) {
	case string:
		return strings.TrimSpace(v)
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func getList(node map[string]interface{}, field string) []string {
	switch v := node[field].(type) {
	case string:
		return []string{strings.TrimSpace(v)}
	case []interface{}:
		var result []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, strings.TrimSpace(s))
			}
		}
		return result
	}
	return nil
}

func atIndex(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
