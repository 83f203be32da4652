package services

import (
	"fmt"

	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/utils"
)

// Seed records are written to a store the first time it is found empty.

func coord(v float64) *float64 {
	return &v
}

func mapURL(lat, long float64) string {
	return fmt.Sprintf("https://maps.google.com/?q=%f,%f", lat, long)
}

func defaultDoctors() []models.Doctor {
	doctor := func(id, name, specialty, phone, address, province, city, description string, lat, long float64) models.Doctor {
		return models.Doctor{
			Base:        models.Base{ID: id},
			Name:        name,
			Specialty:   specialty,
			Phone:       phone,
			Address:     address,
			Province:    province,
			City:        city,
			Description: description,
			MapURL:      mapURL(lat, long),
			Latitude:    coord(lat),
			Longitude:   coord(long),
		}
	}

	return []models.Doctor{
		doctor("d-1", "دکتر لیلا محمدی", "دامپزشک عمومی", "021-55667788",
			"تهران، خیابان ولیعصر، کوچه نیلوفر، پلاک ۱۲", "تهران", "تهران",
			"متخصص مراقبت از حیوانات خانگی کوچک با بیش از ۱۰ سال سابقه.", 35.706282, 51.401978),
		doctor("d-2", "دکتر سامان رضایی", "جراح دامپزشک", "026-33112255",
			"البرز، کرج، خیابان آزادی، پلاک ۵۶", "البرز", "کرج",
			"جراح تخصصی حیوانات خانگی و حیوانات اگزوتیک.", 35.832702, 50.991550),
		doctor("d-3", "دکتر پریسا یکتا", "متخصص داخلی حیوانات خانگی", "031-33669922",
			"اصفهان، خیابان چهارباغ عباسی، نبش کوچه فرهاد", "اصفهان", "اصفهان",
			"ارائه دهنده خدمات تشخیصی و تصویربرداری برای حیوانات خانگی.", 32.654627, 51.667983),
		doctor("d-4", "دکتر آرش موحد", "متخصص پرندگان و حیوانات اگزوتیک", "013-44225511",
			"رشت، میدان شهرداری، ساختمان نیما، واحد ۴", "گیلان", "رشت",
			"دارای دوره تخصصی در مراقبت از پرندگان زینتی و حیوانات اگزوتیک.", 37.280833, 49.585278),
		doctor("d-5", "دکتر نوید احمدی", "جراح ارتوپد حیوانات", "071-36224455",
			"شیراز، بلوار ستارخان، ساختمان مهر، طبقه دوم", "فارس", "شیراز",
			"متخصص جراحی ارتوپدی و فیزیوتراپی برای حیوانات آسیب دیده.", 29.591768, 52.583698),
		doctor("d-6", "دکتر مهسا توکلی", "متخصص قلب و عروق حیوانات", "051-38552233",
			"مشهد، بلوار ساجدی، روبروی پارک ملت، پلاک ۲۷", "خراسان رضوی", "مشهد",
			"کنترل بیماری‌های قلبی و ارائه برنامه‌های مراقبتی ویژه.", 36.298824, 59.605743),
		doctor("d-7", "دکتر حمیدرضا کرمی", "اورژانس و مراقبت ویژه", "061-34456677",
			"اهواز، کیانپارس، خیابان ۲۴ شرقی، پلاک ۱۸", "خوزستان", "اهواز",
			"پوشش ۲۴ ساعته برای بیماران اورژانسی و خدمات بستری.", 31.318327, 48.670618),
		doctor("d-8", "دکتر سارا صادقی", "متخصص دندانپزشکی حیوانات", "041-35551122",
			"تبریز، خیابان آزادی، جنب پارک ائل گلی، پلاک ۹۲", "آذربایجان شرقی", "تبریز",
			"خدمات کامل جرم‌گیری، جراحی فک و مراقبت‌های دهان و دندان.", 38.066667, 46.299999),
		doctor("d-9", "دکتر نازنین فرهمند", "پزشک عمومی حیوانات خانگی", "011-33221144",
			"ساری، بلوار خزر، نبش خیابان گلستان، پلاک ۷۵", "مازندران", "ساری",
			"ویزیت دوره‌ای، واکسیناسیون و تغذیه تخصصی برای حیوانات خانگی.", 36.563322, 53.060097),
	}
}

func defaultPosts() []models.Post {
	return []models.Post{
		{
			Base:      models.Base{ID: "1"},
			Title:     "خوش آمدید به فروشگاه حیوانات خانگی",
			Content:   "این اولین پست وبلاگ ماست. در اینجا می‌توانید مطالب مفیدی درباره نگهداری از حیوانات خانگی پیدا کنید.",
			Image:     "https://source.unsplash.com/800x600/?pet,cat",
			Published: true,
		},
	}
}

func defaultProducts() []models.Product {
	return []models.Product{
		{
			Base:        models.Base{ID: "p-1"},
			Name:        "غذای خشک گربه رویال کنین",
			CategoryID:  models.CategoryCat,
			Description: "غذای کامل برای گربه‌های خانگی با ترکیبات متعادل و پروتئین بالا.",
			Price:       890000,
			Stock:       20,
			Brand:       "Royal Canin",
			Weight:      "2 کیلوگرم",
			Highlights:  []string{"تقویت سیستم ایمنی", "کمک به سلامت دندان‌ها", "هضم آسان"},
		},
		{
			Base:        models.Base{ID: "p-2"},
			Name:        "قلاده قابل تنظیم سگ",
			CategoryID:  models.CategoryDog,
			Description: "قلاده پارچه‌ای نرم با قابلیت تنظیم اندازه و قفل ایمنی.",
			Price:       320000,
			Stock:       45,
			Brand:       "PetSafe",
			Highlights:  []string{"ضد حساسیت", "قفل فلزی مقاوم", "نوار شب‌نما"},
		},
		{
			Base:        models.Base{ID: "p-3"},
			Name:        "قفس پرندگان متوسط",
			CategoryID:  models.CategoryBird,
			Description: "قفس فلزی با پوشش ضدزنگ مناسب طوطی و مرغ عشق با سینی قابل شستشو.",
			Price:       1250000,
			Stock:       10,
			Highlights:  []string{"دارای تاب و ظرف آب", "کف کشویی", "در بزرگ برای تمیزکاری"},
		},
		{
			Base:        models.Base{ID: "p-4"},
			Name:        "ست مراقبت از خرگوش",
			CategoryID:  models.CategoryRabbit,
			Description: "شامل برس، ناخن‌گیر و شامپو مخصوص خرگوش برای مراقبت روزانه.",
			Price:       540000,
			Stock:       15,
			Highlights:  []string{"برس نرم فیبری", "شامپوی بدون اشک", "ناخن‌گیر استیل"},
		},
		{
			Base:        models.Base{ID: "p-5"},
			Name:        "غذای تشویقی سگ با طعم مرغ",
			CategoryID:  models.CategoryDog,
			Description: "تشویقی نرم مناسب آموزش با پروتئین بالا و بدون گلوتن.",
			Price:       215000,
			Stock:       60,
			Highlights:  []string{"بدون مواد نگهدارنده", "قابل استفاده برای تمامی نژادها"},
		},
		{
			Base:        models.Base{ID: "p-6"},
			Name:        "اسباب‌بازی تعادلی گربه",
			CategoryID:  models.CategoryCat,
			Description: "اسباب‌بازی فنری با توپ LED برای سرگرمی و تحرک بیشتر گربه‌ها.",
			Price:       175000,
			Stock:       35,
			Highlights:  []string{"چراغ LED", "پایه ضدلغزش", "قابل استفاده برای دو گربه"},
		},
		{
			Base:        models.Base{ID: "p-7"},
			Name:        "خانه چوبی همستر",
			CategoryID:  models.CategorySmallPet,
			Description: "خانه چندطبقه از چوب طبیعی بدون مواد شیمیایی برای همستر و خوکچه.",
			Price:       460000,
			Stock:       12,
			Highlights:  []string{"طراحی سه طبقه", "مقاوم در برابر رطوبت", "نصب آسان"},
		},
		{
			Base:        models.Base{ID: "p-8"},
			Name:        "بطری آب مسافرتی حیوانات",
			CategoryID:  models.CategoryAccessory,
			Description: "بطری آب ۵۰۰ میلی لیتری با ظرف تاشو مناسب سفر و پیاده‌روی.",
			Price:       210000,
			Stock:       30,
			Highlights:  []string{"بدون نشتی", "سبک و کم‌جا", "قابل استفاده برای گربه و سگ"},
		},
	}
}

func defaultSlides() []models.Slide {
	return []models.Slide{
		{
			Base:        models.Base{ID: "slide-1"},
			Title:       "هر آنچه دوست پشمالوی شما نیاز دارد",
			Description: "غذا، لوازم و خدمات تخصصی دامپزشکی در یک فضای مدرن با ارسال سریع.",
			Accent:      "فروشگاه آنلاین",
			Image:       "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?auto=format&fit=crop&w=1400&q=80",
			CTALabel:    "مشاهده فروشگاه",
			CTALink:     "/shop",
			Order:       1,
		},
		{
			Base:        models.Base{ID: "slide-2"},
			Title:       "رزرو سریع نوبت دامپزشکی",
			Description: "با پزشکان منتخب ما آشنا شوید و تنها با چند کلیک نوبت رزرو کنید.",
			Accent:      "پزشکان معتبر",
			Image:       "https://images.unsplash.com/photo-1518020382113-a7e8fc38eac9?auto=format&fit=crop&w=1400&q=80",
			CTALabel:    "لیست پزشکان",
			CTALink:     "/doctors",
			Order:       2,
		},
		{
			Base:        models.Base{ID: "slide-3"},
			Title:       "مطالب الهام‌بخش برای نگهداری بهتر",
			Description: "در وبلاگ پت‌شاپ نکات تخصصی مراقبت و تربیت حیوانات خانگی را بخوانید.",
			Accent:      "مقالات جدید",
			Image:       "https://images.unsplash.com/photo-1507146426996-ef05306b995a?auto=format&fit=crop&w=1400&q=80",
			CTALabel:    "وبلاگ پت‌شاپ",
			CTALink:     "/blog",
			Order:       3,
		},
	}
}

const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

// defaultUsers hashes the admin password, so callers should memoize it.
func defaultUsers() ([]models.User, error) {
	hash, err := utils.HashPassword(DefaultAdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash default admin password: %w", err)
	}
	return []models.User{
		{
			Base:     models.Base{ID: "1"},
			Email:    DefaultAdminEmail,
			Name:     "مدیر سیستم",
			Password: hash,
			Role:     models.RoleAdmin,
		},
	}, nil
}
