package views

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"crm-dashboard/internal/dto"
)

type SortMode string

const (
	SortUpdatedDesc SortMode = "UPDATED_DESC"
	SortUpdatedAsc  SortMode = "UPDATED_ASC"
	SortCreatedDesc SortMode = "CREATED_DESC"
	SortCreatedAsc  SortMode = "CREATED_ASC"
)

// ParseSortMode: неизвестное значение даёт режим по умолчанию UPDATED_DESC.
func ParseSortMode(s string) SortMode {
	switch m := SortMode(strings.ToUpper(strings.TrimSpace(s))); m {
	case SortUpdatedDesc, SortUpdatedAsc, SortCreatedDesc, SortCreatedAsc:
		return m
	}
	return SortUpdatedDesc
}

// OtherBucket - ключ корзины для тикетов с неизвестным этапом.
const OtherBucket = "OTHER"

type StageBucket struct {
	Stage   dto.TicketStage `json:"stage"`
	Tickets []dto.Ticket    `json:"tickets"`
}

// Board - тикеты, разложенные по этапам. Stages идут по возрастанию stageOrder.
type Board struct {
	Stages []StageBucket `json:"stages"`
	Other  []dto.Ticket  `json:"other"`
}

// SortStages возвращает копию, отсортированную по stageOrder; равные сохраняют исходный порядок.
func SortStages(stages []dto.TicketStage) []dto.TicketStage {
	out := slices.Clone(stages)
	slices.SortStableFunc(out, func(a, b dto.TicketStage) int { return cmp.Compare(a.StageOrder, b.StageOrder) })
	return out
}

// GroupByStage кладёт каждый тикет ровно в одну корзину: этапа или Other.
func GroupByStage(tickets []dto.Ticket, stages []dto.TicketStage) Board {
	sorted := SortStages(stages)
	board := Board{Stages: make([]StageBucket, 0, len(sorted)), Other: []dto.Ticket{}}
	index := make(map[uint64]int, len(sorted))
	for _, s := range sorted {
		if _, dup := index[s.StageID]; dup {
			continue
		}
		index[s.StageID] = len(board.Stages)
		board.Stages = append(board.Stages, StageBucket{Stage: s, Tickets: []dto.Ticket{}})
	}

	for _, t := range tickets {
		if i, ok := index[t.CurrentStageID]; ok {
			board.Stages[i].Tickets = append(board.Stages[i].Tickets, t)
			continue
		}
		board.Other = append(board.Other, t)
	}
	return board
}

// DefaultActiveStage - первый непустой этап, иначе первый этап. false, если этапов нет.
func (b Board) DefaultActiveStage() (uint64, bool) {
	for _, bucket := range b.Stages {
		if len(bucket.Tickets) > 0 {
			return bucket.Stage.StageID, true
		}
	}
	if len(b.Stages) > 0 {
		return b.Stages[0].Stage.StageID, true
	}
	return 0, false
}

// Bucket ищет корзину по ключу: id этапа или OTHER.
func (b Board) Bucket(key string) ([]dto.Ticket, bool) {
	if strings.EqualFold(key, OtherBucket) {
		return b.Other, true
	}
	id, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return nil, false
	}
	for _, bucket := range b.Stages {
		if bucket.Stage.StageID == id {
			return bucket.Tickets, true
		}
	}
	return nil, false
}

// FilterBoardTickets - поиск внутри корзины: id, компания, филиал, тип, тема.
func FilterBoardTickets(tickets []dto.Ticket, q string) []dto.Ticket {
	out := make([]dto.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if MatchAnyField(q, strconv.FormatUint(t.TicketID, 10), t.CompanyName, t.BranchName, t.TicketTypeName, t.Headline()) {
			out = append(out, t)
		}
	}
	return out
}

// SortTickets возвращает отсортированную копию.
func SortTickets(tickets []dto.Ticket, mode SortMode) []dto.Ticket {
	out := slices.Clone(tickets)
	slices.SortStableFunc(out, func(a, b dto.Ticket) int {
		switch mode {
		case SortUpdatedAsc:
			return a.UpdatedAtUtc.Compare(b.UpdatedAtUtc)
		case SortCreatedDesc:
			return b.CreatedAtUtc.Compare(a.CreatedAtUtc)
		case SortCreatedAsc:
			return a.CreatedAtUtc.Compare(b.CreatedAtUtc)
		default:
			return b.UpdatedAtUtc.Compare(a.UpdatedAtUtc)
		}
	})
	return out
}

type TypeTab struct {
	TicketTypeID uint64 `json:"ticketTypeId"`
	Name         string `json:"name"`
	Count        int    `json:"count"`
}

// TypesWithTickets - вкладки только для типов, которые встречаются среди тикетов, в порядке справочника.
func TypesWithTickets(tickets []dto.Ticket, types []dto.TicketType) []TypeTab {
	counts := make(map[uint64]int)
	for _, t := range tickets {
		if t.TicketTypeID != 0 {
			counts[t.TicketTypeID]++
		}
	}
	tabs := make([]TypeTab, 0, len(counts))
	for _, tt := range types {
		if n := counts[tt.TicketTypeID]; n > 0 {
			tabs = append(tabs, TypeTab{TicketTypeID: tt.TicketTypeID, Name: tt.Name, Count: n})
		}
	}
	return tabs
}

// ActiveType: запрошенный тип, если у него есть вкладка, иначе первая вкладка.
func ActiveType(tabs []TypeTab, requested *uint64) (uint64, bool) {
	if requested != nil {
		for _, tab := range tabs {
			if tab.TicketTypeID == *requested {
				return tab.TicketTypeID, true
			}
		}
	}
	if len(tabs) == 0 {
		return 0, false
	}
	return tabs[0].TicketTypeID, true
}

func TicketsOfType(tickets []dto.Ticket, typeID uint64) []dto.Ticket {
	out := make([]dto.Ticket, 0)
	for _, t := range tickets {
		if t.TicketTypeID == typeID {
			out = append(out, t)
		}
	}
	return out
}

type StageCount struct {
	Stage dto.TicketStage `json:"stage"`
	Count int             `json:"count"`
}

// BoardView - один экран доски: вкладки типов, счётчики этапов и видимая корзина.
type BoardView struct {
	Types        []TypeTab    `json:"types"`
	ActiveTypeID *uint64      `json:"activeTypeId"`
	Stages       []StageCount `json:"stages"`
	OtherCount   int          `json:"otherCount"`
	ActiveStage  string       `json:"activeStage"`
	Sort         SortMode     `json:"sort"`
	Tickets      []dto.Ticket `json:"tickets"`
}

type BoardQuery struct {
	TypeID *uint64
	Stage  string
	Q      string
	Sort   SortMode
}

// BuildBoardView собирает экран доски; stages - этапы выбранного типа.
func BuildBoardView(tickets []dto.Ticket, types []dto.TicketType, stages []dto.TicketStage, typeID uint64, hasType bool, q BoardQuery) BoardView {
	view := BoardView{
		Types:   TypesWithTickets(tickets, types),
		Stages:  []StageCount{},
		Sort:    q.Sort,
		Tickets: []dto.Ticket{},
	}
	if view.Sort == "" {
		view.Sort = SortUpdatedDesc
	}
	if !hasType {
		return view
	}
	view.ActiveTypeID = &typeID

	board := GroupByStage(TicketsOfType(tickets, typeID), stages)
	for _, bucket := range board.Stages {
		view.Stages = append(view.Stages, StageCount{Stage: bucket.Stage, Count: len(bucket.Tickets)})
	}
	view.OtherCount = len(board.Other)

	active, ok := board.Bucket(q.Stage)
	if ok {
		view.ActiveStage = strings.ToUpper(q.Stage)
	} else if id, found := board.DefaultActiveStage(); found {
		view.ActiveStage = strconv.FormatUint(id, 10)
		active, _ = board.Bucket(view.ActiveStage)
	} else {
		view.ActiveStage = OtherBucket
		active = board.Other
	}

	view.Tickets = SortTickets(FilterBoardTickets(active, q.Q), view.Sort)
	return view
}
