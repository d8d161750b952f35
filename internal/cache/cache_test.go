package cache_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhakazx/animeinfo/internal/cache"
	"github.com/zhakazx/animeinfo/internal/config"
)

var _ = Describe("Memory", func() {
	var (
		ctx   context.Context
		m     *cache.Memory
		clock time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		clock = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
		m = cache.NewMemory(0)
		m.SetClock(func() time.Time { return clock })
	})

	AfterEach(func() {
		Expect(m.Close()).To(Succeed())
	})

	It("should return a stored body until it expires", func() {
		// Arrange
		Expect(m.Set(ctx, "jikan:/anime/1", []byte("body"), time.Minute)).To(Succeed())

		// Act
		body, ok, err := m.Get(ctx, "jikan:/anime/1")

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(body).To(Equal([]byte("body")))

		clock = clock.Add(time.Minute)
		_, ok, err = m.Get(ctx, "jikan:/anime/1")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	// Given many goroutines writing and reading the same keys
	// When they run at once
	// Then every read sees a complete entry
	It("should be safe for concurrent use", func() {
		// Arrange
		keys := []string{"jikan:/anime/1", "jikan:/anime/5", "jikan:/genres/anime"}
		done := make(chan struct{})

		// Act
		for i := range 8 {
			go func() {
				defer GinkgoRecover()
				for j := range 100 {
					key := keys[(i+j)%len(keys)]
					Expect(m.Set(ctx, key, []byte(key), time.Hour)).To(Succeed())
					body, ok, err := m.Get(ctx, key)
					Expect(err).NotTo(HaveOccurred())
					Expect(ok).To(BeTrue())
					Expect(string(body)).To(Equal(key))
				}
				done <- struct{}{}
			}()
		}

		// Assert
		for range 8 {
			Eventually(done, 5*time.Second).Should(Receive())
		}
		Expect(m.Len()).To(Equal(len(keys)))
	})

	It("should miss unknown keys", func() {
		_, ok, err := m.Get(ctx, "nope")

		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	// Given one expired and one fresh entry
	// When purging
	// Then only the expired entry is dropped
	It("should purge expired entries", func() {
		// Arrange
		Expect(m.Set(ctx, "short", []byte("a"), time.Second)).To(Succeed())
		Expect(m.Set(ctx, "long", []byte("b"), time.Hour)).To(Succeed())
		clock = clock.Add(time.Minute)

		// Act
		removed := m.Purge()

		// Assert
		Expect(removed).To(Equal(1))
		Expect(m.Len()).To(Equal(1))
	})

	It("should run the janitor in the background", func() {
		// Arrange
		j := cache.NewMemory(10 * time.Millisecond)
		defer j.Close()
		Expect(j.Set(ctx, "k", []byte("v"), time.Millisecond)).To(Succeed())

		// Assert
		Eventually(j.Len, time.Second, 10*time.Millisecond).Should(BeZero())
	})
})

var _ = Describe("Noop", func() {
	It("should never hit", func() {
		c := cache.NewNoop()

		Expect(c.Set(context.Background(), "k", []byte("v"), time.Hour)).To(Succeed())
		_, ok, err := c.Get(context.Background(), "k")

		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("New", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should build the memory cache", func() {
		c, err := cache.New(ctx, config.Cache{Backend: cache.BackendMemory})

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(BeAssignableToTypeOf(&cache.Memory{}))
		Expect(c.Close()).To(Succeed())
	})

	// Given the duckdb backend without a dsn
	// When the cache is built
	// Then it runs on an in-memory database with the schema applied
	It("should build a migrated duckdb cache", func() {
		// Act
		c, err := cache.New(ctx, config.Cache{Backend: cache.BackendDuckDB})
		Expect(err).NotTo(HaveOccurred())
		defer c.Close()

		// Assert
		Expect(c.Set(ctx, "jikan:/genres/anime", []byte(`{"data":[]}`), time.Hour)).To(Succeed())
		body, ok, err := c.Get(ctx, "jikan:/genres/anime")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(string(body)).To(Equal(`{"data":[]}`))
	})

	It("should build the noop cache", func() {
		c, err := cache.New(ctx, config.Cache{Backend: cache.BackendNone})

		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(BeAssignableToTypeOf(&cache.Noop{}))
	})

	It("should reject an unknown backend", func() {
		_, err := cache.New(ctx, config.Cache{Backend: "memcached"})

		Expect(err).To(MatchError(ContainSubstring(`unknown cache backend "memcached"`)))
	})

	It("should validate backend names", func() {
		Expect(cache.IsValidBackend("redis")).To(BeTrue())
		Expect(cache.IsValidBackend("memcached")).To(BeFalse())
	})
})
