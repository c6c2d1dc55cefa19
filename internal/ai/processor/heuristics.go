package processor

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"ltrack-server/internal/store"

	"github.com/google/uuid"
)

const (
	// CustomerLifetimeValue is the assumed value of one friend in JPY
	CustomerLifetimeValue = 5000
	// DefaultInvestmentAmount is used when no investment is given
	DefaultInvestmentAmount = 100000

	optimizationFactor     = 1.3
	maxOptimizedConversion = 0.15
	segmentDetailLimit     = 50
	forecastDays           = 30
	trendWindowDays        = 7
)

// Segment categories, checked in this order
const (
	SegmentChampion = "Champion"
	SegmentLoyal    = "Loyal Customer"
	SegmentAtRisk   = "At Risk"
	SegmentLost     = "Lost Customer"
	SegmentNew      = "New Customer"
)

var segmentOrder = []string{SegmentChampion, SegmentLoyal, SegmentAtRisk, SegmentLost, SegmentNew}

const (
	RiskHigh   = "High"
	RiskMedium = "Medium"
	RiskLow    = "Low"
)

func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// daysSince counts whole days elapsed between t and now
func daysSince(t, now time.Time) int {
	return int(math.Floor(now.Sub(t).Hours() / 24))
}

type CurrentActivity struct {
	TotalClicks     int    `json:"totalClicks"`
	TotalFriends    int    `json:"totalFriends"`
	ConversionRate  string `json:"conversionRate"`
	AvgDailyClicks  string `json:"avgDailyClicks"`
	AvgDailyFriends string `json:"avgDailyFriends"`
}

type Trend struct {
	GrowthRate string `json:"growthRate"`
	Direction  string `json:"direction"`
}

type Forecast struct {
	EstimatedClicks  int     `json:"estimatedClicks"`
	EstimatedFriends int     `json:"estimatedFriends"`
	Confidence       float64 `json:"confidence"`
}

type ForecastWindow struct {
	Next30Days Forecast `json:"next30Days"`
}

type ChartData struct {
	Daily        []store.DailyCount `json:"daily"`
	DailyFriends []store.DailyCount `json:"dailyFriends"`
}

// FriendPrediction extrapolates the next 30 days from the last 30
type FriendPrediction struct {
	Period          string          `json:"period"`
	Current         CurrentActivity `json:"current"`
	Trend           Trend           `json:"trend"`
	Prediction      ForecastWindow  `json:"prediction"`
	Recommendations []string        `json:"recommendations"`
	ChartData       ChartData       `json:"chartData"`
}

// GrowthRate compares the mean of the last 7 daily entries with the 7 before
// them. Both means divide by 7 regardless of how many entries exist.
func GrowthRate(daily []store.DailyCount) float64 {
	n := len(daily)
	recentStart := max(0, n-trendWindowDays)
	previousStart := max(0, n-2*trendWindowDays)

	sum := func(entries []store.DailyCount) float64 {
		total := 0
		for _, d := range entries {
			total += d.Count
		}
		return float64(total) / trendWindowDays
	}
	recent := sum(daily[recentStart:])
	previous := sum(daily[previousStart:recentStart])
	if previous <= 0 {
		return 0
	}
	return (recent - previous) / previous * 100
}

// ForecastFriends projects clicks and friends for the next 30 days
func ForecastFriends(clicks, friends int, dailyClicks, dailyFriends []store.DailyCount) FriendPrediction {
	avgDailyClicks := float64(clicks) / forecastDays
	avgDailyFriends := float64(friends) / forecastDays
	conversionRate := percent(friends, clicks)
	growth := GrowthRate(dailyClicks)

	estimatedClicks := int(math.Round(avgDailyClicks * forecastDays * (1 + growth/100)))
	estimatedFriends := int(math.Round(float64(estimatedClicks) * conversionRate / 100))

	direction := "stable"
	switch {
	case growth > 0:
		direction = "increasing"
	case growth < 0:
		direction = "decreasing"
	}

	if dailyClicks == nil {
		dailyClicks = []store.DailyCount{}
	}
	if dailyFriends == nil {
		dailyFriends = []store.DailyCount{}
	}

	return FriendPrediction{
		Period: predictionPeriod,
		Current: CurrentActivity{
			TotalClicks:     clicks,
			TotalFriends:    friends,
			ConversionRate:  fixed(conversionRate, 2),
			AvgDailyClicks:  fixed(avgDailyClicks, 1),
			AvgDailyFriends: fixed(avgDailyFriends, 1),
		},
		Trend: Trend{GrowthRate: fixed(growth, 2), Direction: direction},
		Prediction: ForecastWindow{Next30Days: Forecast{
			EstimatedClicks:  estimatedClicks,
			EstimatedFriends: estimatedFriends,
			Confidence:       math.Min(85, math.Max(60, 100-math.Abs(growth*2))),
		}},
		Recommendations: friendRecommendations(conversionRate, growth),
		ChartData:       ChartData{Daily: dailyClicks, DailyFriends: dailyFriends},
	}
}

func friendRecommendations(conversionRate, growth float64) []string {
	recs := []string{}
	if conversionRate < 5 {
		recs = append(recs,
			"Conversion rate is low. Review where your tracking links are placed.",
			"Make your LINE account profile more appealing.")
	}
	if growth < 0 {
		recs = append(recs,
			"Growth is trending down. Consider launching a new campaign.",
			"Try a different approach with an A/B test.")
	}
	if conversionRate > 10 {
		recs = append(recs, "Performance is strong. Reuse this tracking setup in other campaigns.")
	}
	return recs
}

type ROICurrent struct {
	Clicks      int    `json:"clicks"`
	Friends     int    `json:"friends"`
	Conversions int    `json:"conversions"`
	CPA         string `json:"cpa"`
	ROI         string `json:"roi"`
}

type ROIOptimized struct {
	EstimatedFriends int    `json:"estimatedFriends"`
	ProjectedCPA     string `json:"projectedCPA"`
	ProjectedROI     string `json:"projectedROI"`
	Improvement      string `json:"improvement"`
}

type ROIBreakdown struct {
	CostPerClick  string `json:"costPerClick"`
	CostPerFriend string `json:"costPerFriend"`
	LifetimeValue int    `json:"lifetimeValue"`
	PaybackPeriod int    `json:"paybackPeriod"`
}

// ROIPrediction compares current return on an investment with an optimized projection
type ROIPrediction struct {
	Investment      float64      `json:"investment"`
	Period          string       `json:"period"`
	Current         ROICurrent   `json:"current"`
	Optimized       ROIOptimized `json:"optimized"`
	Breakdown       ROIBreakdown `json:"breakdown"`
	Recommendations []string     `json:"recommendations"`
}

// ValidateInvestment rejects zero, negative and non-finite amounts
func ValidateInvestment(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidInvestmentAmount
	}
	return nil
}

func roi(friends int, investment float64) float64 {
	return (float64(friends)*CustomerLifetimeValue/investment - 1) * 100
}

// ProjectROI assumes a fixed lifetime value and a 30% conversion improvement capped at 15%
func ProjectROI(investment float64, clicks, friends, conversions int) ROIPrediction {
	var cpa, currentROI float64
	if friends > 0 {
		cpa = investment / float64(friends)
		currentROI = roi(friends, investment)
	}

	var optimizedRate float64
	if clicks > 0 {
		optimizedRate = math.Min(float64(friends)/float64(clicks)*optimizationFactor, maxOptimizedConversion)
	}
	predictedFriends := int(math.Round(float64(clicks) * optimizedRate))
	predictedROI := roi(predictedFriends, investment)

	projectedCPA := "0"
	if predictedFriends > 0 {
		projectedCPA = fixed(investment/float64(predictedFriends), 0)
	}
	costPerClick := "0"
	if clicks > 0 {
		costPerClick = fixed(investment/float64(clicks), 0)
	}
	payback := 0
	if cpa > 0 {
		payback = int(math.Ceil(cpa / (CustomerLifetimeValue / 12.0)))
	}

	return ROIPrediction{
		Investment: investment,
		Period:     predictionPeriod,
		Current: ROICurrent{
			Clicks:      clicks,
			Friends:     friends,
			Conversions: conversions,
			CPA:         fixed(cpa, 0),
			ROI:         fixed(currentROI, 1),
		},
		Optimized: ROIOptimized{
			EstimatedFriends: predictedFriends,
			ProjectedCPA:     projectedCPA,
			ProjectedROI:     fixed(predictedROI, 1),
			Improvement:      fixed(predictedROI-currentROI, 1),
		},
		Breakdown: ROIBreakdown{
			CostPerClick:  costPerClick,
			CostPerFriend: fixed(cpa, 0),
			LifetimeValue: CustomerLifetimeValue,
			PaybackPeriod: payback,
		},
		Recommendations: roiRecommendations(currentROI, cpa),
	}
}

func roiRecommendations(currentROI, cpa float64) []string {
	recs := []string{}
	if currentROI < 100 {
		recs = append(recs,
			"ROI is low. Revisit your targeting.",
			"Improve content quality to raise the friend-add rate.")
	}
	if cpa > 1000 {
		recs = append(recs, "Acquisition cost is high. Optimize your ad delivery settings.")
	}
	return recs
}

// SegmentDetail is one friend's RFM scores and category
type SegmentDetail struct {
	FriendID     uuid.UUID `json:"friendId"`
	Recency      int       `json:"recency"`
	Frequency    int       `json:"frequency"`
	Monetary     float64   `json:"monetary"`
	TrackingCode string    `json:"trackingCode"`
	Category     string    `json:"category"`
}

// SegmentAnalysis groups friends into RFM categories
type SegmentAnalysis struct {
	TotalFriends    int             `json:"totalFriends"`
	Segments        map[string]int  `json:"segments"`
	Details         []SegmentDetail `json:"details"`
	Insights        []string        `json:"insights"`
	Recommendations []string        `json:"recommendations"`
}

// ClassifySegment applies the RFM rules; the first matching rule wins
func ClassifySegment(recency, frequency int) string {
	switch {
	case recency <= 7 && frequency >= 2:
		return SegmentChampion
	case recency <= 30 && frequency >= 1:
		return SegmentLoyal
	case recency > 30 && frequency == 0:
		return SegmentAtRisk
	case recency > 60:
		return SegmentLost
	default:
		return SegmentNew
	}
}

// AnalyzeSegments scores every friend as of now
func AnalyzeSegments(friends []store.FriendEngagement, now time.Time) SegmentAnalysis {
	result := SegmentAnalysis{
		TotalFriends:    len(friends),
		Segments:        map[string]int{},
		Details:         []SegmentDetail{},
		Insights:        []string{},
		Recommendations: []string{},
	}

	for _, f := range friends {
		recency := daysSince(f.AddedAt, now)
		category := ClassifySegment(recency, f.Conversions)
		result.Segments[category]++
		if len(result.Details) < segmentDetailLimit {
			result.Details = append(result.Details, SegmentDetail{
				FriendID:     f.FriendID,
				Recency:      recency,
				Frequency:    f.Conversions,
				Monetary:     f.Monetary,
				TrackingCode: f.TrackingCodeName,
				Category:     category,
			})
		}
	}

	for _, category := range segmentOrder {
		count, ok := result.Segments[category]
		if !ok {
			continue
		}
		result.Insights = append(result.Insights, fmt.Sprintf("%s: %d (%s%%)", category, count, fixed(percent(count, len(friends)), 1)))
	}

	if result.Segments[SegmentAtRisk] > 0 {
		result.Recommendations = append(result.Recommendations, "Run a re-engagement campaign for at-risk friends.")
	}
	if result.Segments[SegmentChampion] > 0 {
		result.Recommendations = append(result.Recommendations, "Offer champions special deals or a loyalty program.")
	}
	return result
}

// ChurnPrediction compares friend acquisition in the last 30 days with the 30 before
type ChurnPrediction struct {
	ChurnRate        string         `json:"churnRate"`
	Trend            string         `json:"trend"`
	RiskDistribution map[string]int `json:"riskDistribution"`
	HighRiskFriends  int            `json:"highRiskFriends"`
	Recommendations  []string       `json:"recommendations"`
}

// ChurnRate is the drop in friend additions between periods, floored at zero
func ChurnRate(recent, previous int) float64 {
	if previous <= 0 {
		return 0
	}
	return math.Max(0, float64(previous-recent)/float64(previous)) * 100
}

// ChurnRisk rates one friend by age and conversions
func ChurnRisk(daysSinceAdded, conversions int) string {
	switch {
	case daysSinceAdded > 60 && conversions == 0:
		return RiskHigh
	case daysSinceAdded > 30 && conversions <= 1:
		return RiskMedium
	default:
		return RiskLow
	}
}

// PredictChurn rates every friend and summarizes the churn trend
func PredictChurn(recent, previous int, friends []store.FriendEngagement, now time.Time) ChurnPrediction {
	rate := ChurnRate(recent, previous)

	trend := "decreasing"
	switch {
	case rate > 20:
		trend = "increasing"
	case rate > 10:
		trend = "stable"
	}

	distribution := map[string]int{}
	for _, f := range friends {
		distribution[ChurnRisk(daysSince(f.AddedAt, now), f.Conversions)]++
	}

	recs := []string{}
	if rate > 20 {
		recs = append(recs,
			"Churn is high. Revisit your engagement strategy.",
			"Set up a regular communication plan.")
	}
	if distribution[RiskHigh] > 0 {
		recs = append(recs, "Run a retention campaign for high-risk friends.")
	}

	return ChurnPrediction{
		ChurnRate:        fixed(rate, 2),
		Trend:            trend,
		RiskDistribution: distribution,
		HighRiskFriends:  distribution[RiskHigh],
		Recommendations:  recs,
	}
}
