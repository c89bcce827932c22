package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "daycare"

// Metrics Prometheus-коллектор HTTP и бизнес-метрик сервиса бронирования
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	checksTotal     *prometheus.CounterVec
	attemptsTotal   *prometheus.CounterVec
	commitsTotal    *prometheus.CounterVec
	bookedDaysTotal *prometheus.CounterVec
	revenueTotal    prometheus.Counter
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"app": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		checksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "availability_checks_total",
			Help:        "Availability checks per service and result",
			ConstLabels: constLabels,
		}, []string{"service", "result"}),
		attemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "attempts_total",
			Help:        "Booking attempts per result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		commitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "commits_total",
			Help:        "Payment commits per result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		bookedDaysTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "committed_days_total",
			Help:        "Committed service days per service",
			ConstLabels: constLabels,
		}, []string{"service"}),
		revenueTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "revenue_total",
			Help:        "Sum of committed booking totals",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.checksTotal,
		m.attemptsTotal,
		m.commitsTotal,
		m.bookedDaysTotal,
		m.revenueTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveCheck фиксирует результат проверки доступности одной услуги
func (m *Metrics) ObserveCheck(service, result string) {
	if m == nil {
		return
	}
	m.checksTotal.WithLabelValues(service, result).Inc()
}

// ObserveAttempt фиксирует результат попытки бронирования
func (m *Metrics) ObserveAttempt(result string) {
	if m == nil {
		return
	}
	m.attemptsTotal.WithLabelValues(result).Inc()
}

// ObserveCommit фиксирует результат подтверждения оплаты
func (m *Metrics) ObserveCommit(result string) {
	if m == nil {
		return
	}
	m.commitsTotal.WithLabelValues(result).Inc()
}

// ObserveCommittedDays фиксирует забронированные дни услуги
func (m *Metrics) ObserveCommittedDays(service string, days int) {
	if m == nil {
		return
	}
	m.bookedDaysTotal.WithLabelValues(service).Add(float64(days))
}

// ObserveRevenue фиксирует оплаченную сумму
func (m *Metrics) ObserveRevenue(amount int) {
	if m == nil {
		return
	}
	m.revenueTotal.Add(float64(amount))
}
