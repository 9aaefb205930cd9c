package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"wordlife_backend/internals/constants"
	"wordlife_backend/internals/features/wordlife/model"
)

// The assistant receives plain text, not structured data: this file renders
// the whole snapshot into the analysis report the prompt embeds. The merge
// here is softer than the ranking path's strict last-write-wins: a newer
// duplicate with an empty field keeps the older field value, so the report
// never loses information to a partial resubmission.

type reportRecord struct {
	Date         string
	District     string
	Name         string
	BibleReading int
	Sunday       constants.Attendance
	Wednesday    constants.Attendance
	Timestamp    int64
}

type reportDistrictStats struct {
	totalRecords      int
	totalBibleReading int
	sundayOnSite      int
	sundayOnline      int
	wednesdayOnSite   int
	wednesdayOnline   int
	participants      map[string]struct{}
}

type reportPersonalStats struct {
	district        string
	name            string
	totalReading    int
	daysWithReading int
	sundayTotal     int
	wednesdayTotal  int
}

func normalizeReportDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	m := parts[1]
	d := parts[2]
	if len(m) == 1 {
		m = "0" + m
	}
	if len(d) == 1 {
		d = "0" + d
	}
	return parts[0] + "-" + m + "-" + d
}

func koreanDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	m, err1 := strconv.Atoi(parts[1])
	d, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return date
	}
	return fmt.Sprintf("%s년 %d월 %d일", parts[0], m, d)
}

// mergeReportRecords de-duplicates by (date, district, trimmed name),
// preferring the newer record but back-filling empty fields from the loser.
func mergeReportRecords(records []model.ActivityRecordModel) []reportRecord {
	byKey := make(map[string]reportRecord, len(records))
	for _, r := range records {
		name := r.TrimmedName()
		if name == "" {
			continue
		}
		rec := reportRecord{
			Date:         normalizeReportDate(r.RecordDate),
			District:     strconv.Itoa(r.RecordDistrict),
			Name:         name,
			BibleReading: r.RecordBibleReading,
			Sunday:       r.RecordSunday,
			Wednesday:    r.RecordWednesday,
			Timestamp:    r.RecordTimestamp.UnixMilli(),
		}
		key := rec.Date + "_" + rec.District + "_" + rec.Name

		existing, ok := byKey[key]
		if !ok {
			byKey[key] = rec
			continue
		}
		if rec.Timestamp >= existing.Timestamp {
			if rec.BibleReading == 0 {
				rec.BibleReading = existing.BibleReading
			}
			if !rec.Sunday.Present() {
				rec.Sunday = existing.Sunday
			}
			if !rec.Wednesday.Present() {
				rec.Wednesday = existing.Wednesday
			}
			byKey[key] = rec
		} else {
			if existing.BibleReading == 0 {
				existing.BibleReading = rec.BibleReading
			}
			if !existing.Sunday.Present() {
				existing.Sunday = rec.Sunday
			}
			if !existing.Wednesday.Present() {
				existing.Wednesday = rec.Wednesday
			}
			byKey[key] = existing
		}
	}

	out := make([]reportRecord, 0, len(byKey))
	for _, rec := range byKey {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].District != out[j].District {
			return out[i].District < out[j].District
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RenderReport turns the full record snapshot into the Korean plain-text
// summary the assistant prompt embeds: district totals, participant roster,
// per-date attendance rosters and cumulative personal stats.
func RenderReport(records []model.ActivityRecordModel, userName string) string {
	merged := mergeReportRecords(records)
	if len(merged) == 0 {
		return "데이터가 없습니다."
	}

	districtStats := make(map[string]*reportDistrictStats)
	personalStats := make(map[string]*reportPersonalStats)
	dateRecords := make(map[string][]reportRecord)

	for _, rec := range merged {
		dateRecords[rec.Date] = append(dateRecords[rec.Date], rec)

		ds, ok := districtStats[rec.District]
		if !ok {
			ds = &reportDistrictStats{participants: make(map[string]struct{})}
			districtStats[rec.District] = ds
		}
		ds.totalRecords++
		ds.totalBibleReading += rec.BibleReading
		ds.participants[rec.Name] = struct{}{}
		if rec.Sunday.IsOnSite() {
			ds.sundayOnSite++
		} else if rec.Sunday.IsOnline() {
			ds.sundayOnline++
		}
		if rec.Wednesday.IsOnSite() {
			ds.wednesdayOnSite++
		} else if rec.Wednesday.IsOnline() {
			ds.wednesdayOnline++
		}

		pKey := rec.District + "_" + rec.Name
		ps, ok := personalStats[pKey]
		if !ok {
			ps = &reportPersonalStats{district: rec.District, name: rec.Name}
			personalStats[pKey] = ps
		}
		ps.totalReading += rec.BibleReading
		if rec.BibleReading > 0 {
			ps.daysWithReading++
		}
		if rec.Sunday.Present() {
			ps.sundayTotal++
		}
		if rec.Wednesday.Present() {
			ps.wednesdayTotal++
		}
	}

	var b strings.Builder
	b.WriteString("매탄교구 말씀생활 데이터 분석\n\n")
	if userName != "" {
		fmt.Fprintf(&b, "조회자: %s\n\n", userName)
	}
	fmt.Fprintf(&b, "총 유니크 기록 수: %d개\n\n", len(merged))

	// 구역별 통계
	b.WriteString("[구역별 통계]\n")
	for _, dist := range sortedKeys(districtStats) {
		ds := districtStats[dist]
		names := sortedKeys(ds.participants)
		sTotal := ds.sundayOnSite + ds.sundayOnline
		wTotal := ds.wednesdayOnSite + ds.wednesdayOnline
		fmt.Fprintf(&b, "구역 %s: 참여자 %d명 (%s), 성경읽기 총 %d장, 주일말씀 총 %d회 (현장 %d회, 온라인 %d회), 수요말씀 총 %d회 (현장 %d회, 온라인 %d회)\n",
			dist, len(names), strings.Join(names, ", "), ds.totalBibleReading,
			sTotal, ds.sundayOnSite, ds.sundayOnline,
			wTotal, ds.wednesdayOnSite, ds.wednesdayOnline)
	}

	// 전체 참여자 목록
	b.WriteString("\n[전체 참여자 목록]\n")
	seen := make(map[string]struct{})
	var roster []string
	for _, rec := range merged {
		label := fmt.Sprintf("%s (%s구역)", rec.Name, rec.District)
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			roster = append(roster, label)
		}
	}
	sort.Strings(roster)
	for i, label := range roster {
		fmt.Fprintf(&b, "%d. %s\n", i+1, label)
	}

	// 전체 성경읽기 참여인원 구역별 현황
	b.WriteString("\n[전체 성경읽기 참여인원 구역별 현황]\n")
	allReaders := make(map[string]struct{})
	districtReaders := make(map[string]map[string]struct{})
	for _, rec := range merged {
		if rec.BibleReading <= 0 {
			continue
		}
		allReaders[rec.Name+"_"+rec.District] = struct{}{}
		if districtReaders[rec.District] == nil {
			districtReaders[rec.District] = make(map[string]struct{})
		}
		districtReaders[rec.District][rec.Name] = struct{}{}
	}
	fmt.Fprintf(&b, "전체: %d명\n", len(allReaders))
	for _, dist := range sortedKeys(districtReaders) {
		pages := 0
		if ds, ok := districtStats[dist]; ok {
			pages = ds.totalBibleReading
		}
		fmt.Fprintf(&b, "%s구역: %d명 (%d장)\n", dist, len(districtReaders[dist]), pages)
	}

	// 전체 수요말씀 누적 참석현황 구역별 현황
	b.WriteString("\n[전체 수요말씀 누적 참석현황 구역별 현황]\n")
	for _, dist := range sortedKeys(districtStats) {
		ds := districtStats[dist]
		wTotal := ds.wednesdayOnSite + ds.wednesdayOnline
		if wTotal > 0 {
			fmt.Fprintf(&b, "%s구역: %d명 (현장 %d명/온라인 %d명)\n",
				dist, wTotal, ds.wednesdayOnSite, ds.wednesdayOnline)
		}
	}

	// 날짜별 상세 데이터 (최신 날짜부터)
	b.WriteString("\n[날짜별 상세 데이터]\n")
	dates := sortedKeys(dateRecords)
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	for _, date := range dates {
		fmt.Fprintf(&b, "\n날짜: %s (%s)\n", date, koreanDate(date))
		writeDateDetail(&b, date, dateRecords[date])
	}

	// 개인별 누적 통계
	b.WriteString("\n[개인별 누적 통계]\n")
	var personal []*reportPersonalStats
	for _, ps := range personalStats {
		if ps.totalReading > 0 || ps.sundayTotal > 0 || ps.wednesdayTotal > 0 {
			personal = append(personal, ps)
		}
	}
	sort.Slice(personal, func(i, j int) bool {
		if personal[i].totalReading != personal[j].totalReading {
			return personal[i].totalReading > personal[j].totalReading
		}
		return personal[i].name < personal[j].name
	})
	for i, ps := range personal {
		fmt.Fprintf(&b, "%d. %s (%s구역): 성경읽기 %d장, 주일 %d회, 수요 %d회\n",
			i+1, ps.name, ps.district, ps.totalReading, ps.sundayTotal, ps.wednesdayTotal)
	}

	return b.String()
}

type dateDistrictGroup struct {
	sundayOnSite    []string
	sundayOnline    []string
	wednesdayOnSite []string
	wednesdayOnline []string
	reading         []string
}

func writeDateDetail(b *strings.Builder, date string, records []reportRecord) {
	groups := make(map[string]*dateDistrictGroup)
	for _, rec := range records {
		g, ok := groups[rec.District]
		if !ok {
			g = &dateDistrictGroup{}
			groups[rec.District] = g
		}
		if rec.Sunday.IsOnSite() {
			g.sundayOnSite = append(g.sundayOnSite, rec.Name)
		} else if rec.Sunday.IsOnline() {
			g.sundayOnline = append(g.sundayOnline, rec.Name)
		}
		if rec.Wednesday.IsOnSite() {
			g.wednesdayOnSite = append(g.wednesdayOnSite, rec.Name)
		} else if rec.Wednesday.IsOnline() {
			g.wednesdayOnline = append(g.wednesdayOnline, rec.Name)
		}
		if rec.BibleReading > 0 {
			g.reading = append(g.reading, fmt.Sprintf("%s(%d장)", rec.Name, rec.BibleReading))
		}
	}

	dists := sortedKeys(groups)
	totalOnSite, totalOnline := 0, 0
	for _, d := range dists {
		g := groups[d]
		sort.Strings(g.sundayOnSite)
		sort.Strings(g.sundayOnline)
		sort.Strings(g.wednesdayOnSite)
		sort.Strings(g.wednesdayOnline)
		sort.Strings(g.reading)
		totalOnSite += len(g.wednesdayOnSite)
		totalOnline += len(g.wednesdayOnline)
	}

	// 날짜별 수요말씀 요약 (구역별 현장/온라인 이름 목록 포함)
	if totalOnSite+totalOnline > 0 {
		fmt.Fprintf(b, "\n[%s 수요말씀 참석현황 요약]\n", koreanDate(date))
		fmt.Fprintf(b, "전체: %d명 (현장 %d명/온라인 %d명)\n", totalOnSite+totalOnline, totalOnSite, totalOnline)
		for _, d := range dists {
			g := groups[d]
			wTotal := len(g.wednesdayOnSite) + len(g.wednesdayOnline)
			if wTotal == 0 {
				continue
			}
			fmt.Fprintf(b, "%s구역: %d명 (현장 %d명/온라인 %d명)\n", d, wTotal, len(g.wednesdayOnSite), len(g.wednesdayOnline))
			if len(g.wednesdayOnSite) > 0 {
				fmt.Fprintf(b, "  - 현장: %s\n", strings.Join(g.wednesdayOnSite, ", "))
			}
			if len(g.wednesdayOnline) > 0 {
				fmt.Fprintf(b, "  - 온라인: %s\n", strings.Join(g.wednesdayOnline, ", "))
			}
		}
	}

	for _, d := range dists {
		g := groups[d]
		fmt.Fprintf(b, "\n[%s구역 상세]\n", d)
		wTotal := len(g.wednesdayOnSite) + len(g.wednesdayOnline)
		if wTotal > 0 {
			fmt.Fprintf(b, "- 수요말씀: 총 %d명 (현장 %d명: %s / 온라인 %d명: %s)\n",
				wTotal, len(g.wednesdayOnSite), strings.Join(g.wednesdayOnSite, ", "),
				len(g.wednesdayOnline), strings.Join(g.wednesdayOnline, ", "))
		}
		sTotal := len(g.sundayOnSite) + len(g.sundayOnline)
		if sTotal > 0 {
			fmt.Fprintf(b, "- 주일말씀: 총 %d명 (현장 %d명: %s / 온라인 %d명: %s)\n",
				sTotal, len(g.sundayOnSite), strings.Join(g.sundayOnSite, ", "),
				len(g.sundayOnline), strings.Join(g.sundayOnline, ", "))
		}
		if len(g.reading) > 0 {
			fmt.Fprintf(b, "- 성경읽기: %s\n", strings.Join(g.reading, ", "))
		}
	}
}
